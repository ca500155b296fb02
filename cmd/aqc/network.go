// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aqc/config"
	"github.com/katalvlaran/aqc/network"
)

func newNetworkCmd(root *rootOptions) *cobra.Command {
	var qubits int
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Print a generated CNOT network",
		Long: `Print the control row and the target row of the configured network.
Flags override the network section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if err = applyNetworkFlags(cmd, &cfg.Network, &cfg.Compiler.Seed); err != nil {
				return err
			}

			nw, err := cfg.MakeNetwork(qubits, network.WithLogger(logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "layout=%s connectivity=%s qubits=%d cnots=%d lower_limit=%d coupled=%t\n",
				cfg.Network.Layout, cfg.Network.Connectivity, qubits, nw.Depth(), network.LowerLimit(qubits), nw.Coupled(qubits))
			fmt.Fprint(out, nw.String())

			return nil
		},
	}
	cmd.Flags().IntVarP(&qubits, "qubits", "n", 3, "number of qubits")
	addNetworkFlags(cmd)

	return cmd
}

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().String("layout", "", "network layout (sequ, spin, cart, cyclic_spin, cyclic_line, random)")
	cmd.Flags().String("connectivity", "", "qubit connectivity (full, line, star)")
	cmd.Flags().Int("depth", 0, "number of CNOT blocks, 0 for the lower limit")
	cmd.Flags().Int64("seed", 0, "seed for random layouts and starting angles")
}

// applyNetworkFlags copies explicitly set flags over the configuration.
func applyNetworkFlags(cmd *cobra.Command, nc *config.NetworkConfig, seed *int64) error {
	var err error
	if cmd.Flags().Changed("layout") {
		nc.Layout, err = cmd.Flags().GetString("layout")
	}
	if err == nil && cmd.Flags().Changed("connectivity") {
		nc.Connectivity, err = cmd.Flags().GetString("connectivity")
	}
	if err == nil && cmd.Flags().Changed("depth") {
		nc.Depth, err = cmd.Flags().GetInt("depth")
	}
	if err == nil && cmd.Flags().Changed("seed") {
		*seed, err = cmd.Flags().GetInt64("seed")
	}

	return err
}
