// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep random data integer-valued so products are exact in float64.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

// mustSquare BUILDS a matrix from literal rows or fails the test.
func mustSquare(tb testing.TB, rows [][]float64) *matrix.Square {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustNew ALLOCATES an n×n zero matrix or fails the test.
func mustNew(tb testing.TB, n int) *matrix.Square {
	tb.Helper()
	m, err := matrix.New(n)
	require.NoError(tb, err)

	return m
}

// randIntSquare fills an n×n matrix with integers in [-lim, lim] from a seeded source.
// Integer entries keep sums and products exact, so fast and naive paths can be
// compared with require.Equal.
func randIntSquare(tb testing.TB, n int, lim int, seed int64) *matrix.Square {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustNew(tb, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, float64(rng.Intn(2*lim+1)-lim)))
		}
	}

	return m
}

// randSquare fills an n×n matrix with uniform values in [-1, 1).
func randSquare(tb testing.TB, n int, seed int64) *matrix.Square {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustNew(tb, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// requireRows asserts m holds exactly the given rows.
func requireRows(tb testing.TB, want [][]float64, m *matrix.Square) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, want, m.Rows())
}

// naivePow multiplies I by a, p times.
func naivePow(tb testing.TB, a *matrix.Square, p int) *matrix.Square {
	tb.Helper()
	acc, err := matrix.NewIdentity(a.Size())
	require.NoError(tb, err)
	for i := 0; i < p; i++ {
		acc, err = matrix.Mul(acc, a)
		require.NoError(tb, err)
	}

	return acc
}
