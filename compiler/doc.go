// SPDX-License-Identifier: MIT

// Package compiler is the entry point of the approximate compiler: given a
// target unitary and a CNOT network it binds a parametric circuit to a
// gradient backend, fits the angles with the optimizer and reports the
// outcome.
//
// Compile runs one fit. Batch runs many independent fits in parallel on a
// bounded worker group; every job draws its randomness from its own seed so
// results do not depend on scheduling.
//
// Errors returned here wrap the aqcerr kinds, so callers keep branching with
// errors.Is.
package compiler
