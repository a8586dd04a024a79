// Package matrix_test: facades delegate to the canonical kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

func TestConstructorsFacades(t *testing.T) {
	z, err := matrix.NewZeros(2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0}, {0, 0}}, z)

	src := mustSquare(t, [][]float64{{1, 2}, {3, 4}})
	zl, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	require.Equal(t, 2, zl.Size())
	require.Zero(t, zl.Sum())

	il, err := matrix.IdentityLike(src)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0}, {0, 1}}, il)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.IdentityLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAlgebraAliases(t *testing.T) {
	a := mustSquare(t, [][]float64{{1, 2}, {3, 4}})
	b := mustSquare(t, [][]float64{{5, 6}, {7, 8}})

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	q, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Identical(p, q))

	h, err := matrix.HadamardProd(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{5, 12}, {21, 32}}, h)
}

func TestSymmetrize(t *testing.T) {
	a := mustSquare(t, [][]float64{{1, 2}, {4, 3}})
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 3}, {3, 3}}, s)

	_, err = matrix.Symmetrize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCommutator(t *testing.T) {
	a := mustSquare(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	// Everything commutes with I.
	c, err := matrix.Commutator(a, id)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0}, {0, 0}}, c)

	b := mustSquare(t, [][]float64{{0, 1}, {0, 0}})
	c, err = matrix.Commutator(a, b)
	require.NoError(t, err)
	// AB = [[0,1],[0,3]], BA = [[3,4],[0,0]].
	requireRows(t, [][]float64{{-3, -3}, {0, 3}}, c)

	_, err = matrix.Commutator(a, mustNew(t, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
