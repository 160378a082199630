// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense constructors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	m, err := matrix.Build(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 2}, {10, 11, 12}}, m.ToRows())
}

func TestBuildCallsFnOncePerCell(t *testing.T) {
	t.Parallel()

	calls := map[[2]int]int{}
	_, err := matrix.Build(3, 4, func(i, j int) float64 {
		calls[[2]int{i, j}]++
		return 0
	})
	require.NoError(t, err)
	require.Len(t, calls, 12)
	for cell, n := range calls {
		require.Equal(t, 1, n, "cell %v", cell)
	}
}

func TestBuildShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		m, n             int
		wantRows, wantCo int
		wantErr          error
	}{
		{"zero rows", 0, 5, 0, 0, nil},
		{"zero cols", 3, 0, 3, 0, nil},
		{"empty", 0, 0, 0, 0, nil},
		{"negative rows", -1, 2, 0, 0, matrix.ErrInvalidDimensions},
		{"negative cols", 2, -1, 0, 0, matrix.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.Build(tc.m, tc.n, matrix.KroneckerDelta)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, matrix.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			r, c := matrix.Shape(m)
			require.Equal(t, tc.wantRows, r)
			require.Equal(t, tc.wantCo, c)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Build(2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	nan := func(i, j int) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return 1
	}
	_, err = matrix.Build(2, 2, nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "entry (1,0)")
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, m.ToRows())

	// source slices are copied
	rows[0][0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	empty, err := matrix.FromRows([][]float64{})
	require.NoError(t, err)
	require.Empty(t, empty.ToRows())
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	for _, n := range []int{0, -3} {
		_, err = matrix.NewIdentity(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	}
}

func TestKroneckerDelta(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, matrix.KroneckerDelta(4, 4))
	require.Equal(t, 0.0, matrix.KroneckerDelta(4, 5))
}

func TestNewZerosAndLike(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.ToRows())

	zl, err := matrix.ZerosLike(MustDense(t, 4, 1))
	require.NoError(t, err)
	r, c := zl.Shape()
	require.Equal(t, [2]int{4, 1}, [2]int{r, c})

	il, err := matrix.IdentityLike(MustDense(t, 2, 2))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, il.ToRows())

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	src := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl, err := matrix.CloneMatrix(src)
	require.NoError(t, err)
	require.NoError(t, cl.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, src, 0, 0))

	_, err = matrix.CloneMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.CloneMatrix(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
