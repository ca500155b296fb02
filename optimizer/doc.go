// SPDX-License-Identifier: MIT

// Package optimizer fits circuit angles to a target by first-order descent.
//
// One run is a small state machine:
//
//	Initialized → Running → Converged | IterationLimit
//
// Every step evaluates (objective, gradient) at the current angles, then
// checks, in order: objective < tol (Converged), iteration cap reached
// (IterationLimit), improvement since the previous step < eps when eps > 0
// (Converged). Only then are the angles updated. Non-convergence is a normal
// outcome reported in Result.State, never an error.
package optimizer
