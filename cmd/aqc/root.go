// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aqc/config"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "aqc",
		Short: "Approximate quantum compiler",
		Long: `aqc fits the angles of a fixed CNOT-network circuit so that its unitary
approaches a target matrix in Frobenius norm.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newCompileCmd(opts), newNetworkCmd(opts))

	return cmd
}

// load returns the configuration file (or the defaults) and a logger.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	logger, err := config.NewLogger(o.debug || cfg.Log.Debug)
	if err != nil {
		return config.Config{}, nil, errors.Wrap(err, "aqc")
	}

	return cfg, logger, nil
}
