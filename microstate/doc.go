// SPDX-License-Identifier: MIT

// Package microstate builds probability distributions of recurrence
// microstates and extracts the recurrence rate from them.
//
// 🚀 What is a microstate?
//
//	A microstate is a small Rows×Cols window of a recurrence plot read as a
//	bit pattern. With the window anchored at (i, j), bit r*Cols+c is set iff
//	the rule recurs at (i+r, j+c). A Rows×Cols shape therefore has
//	2^(Rows·Cols) possible states, and Distribution returns the probability
//	of each one.
//
//	  Shape{3,1}:  bit0 = R(i,   j)
//	               bit1 = R(i+1, j)      state 2 (0b010) = isolated
//	               bit2 = R(i+2, j)      recurrence, used by laminarity
//
// ✨ Scanning modes:
//   - exhaustive (default): every anchor once, deterministic.
//   - WithWorkers(k): exhaustive, split across k goroutines; the result is
//     identical to the serial scan.
//   - WithSamples(n): n uniformly random anchors from a seeded source
//     (WithSeed); same seed ⇒ same distribution.
//
// Rate turns a distribution into the recurrence rate: the expected fraction
// of recurrent cells per microstate.
//
// Complexity: O(A·Rows·Cols) rule evaluations for A anchors, O(2^(Rows·Cols)) memory.
package microstate
