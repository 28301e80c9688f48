// SPDX-License-Identifier: MIT

// Package rqa is a pure-Go toolkit for Recurrence Quantification Analysis:
// deciding which time indices of one or more series recur, and summarising
// the recurrence structure with scalar measures.
//
// 🚀 What is RQA?
//
//	Two times i and j recur when the states x(i) and x(j) are close. The
//	boolean matrix R(i,j) — the recurrence plot — exposes periodicity,
//	laminar phases and chaos; RQA turns it into numbers:
//		• Recurrence rate (RR): fraction of recurrent pairs
//		• Microstate entropy: Shannon entropy of small local patterns of R
//		• Laminarity (LAM): tendency of recurrences to form vertical lines
//
// Under the hood, everything is organised in small packages:
//
//	series/     — immutable univariate/multivariate series, CSV ingestion
//	metric/     — distance port + Euclidean, Manhattan, Supremum
//	recurrence/ — Standard, Corridor and JRP recurrence rules
//	microstate/ — microstate distributions and recurrence rate
//	measure/    — entropy, laminarity, recurrence plots, threshold selection
//	config/     — YAML analysis configuration
//	cmd/rqa     — command-line front end
//
// Quick example:
//
//	x, _ := series.New([]float64{0, 1, 0, 1, 0})
//	lam, err := measure.Laminarity(x, recurrence.Scalar(0.5))
//
//	go install github.com/katalvlaran/rqa/cmd/rqa@latest
package rqa
