// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/stretchr/testify/require"
)

func TestConverters(t *testing.T) {
	t.Parallel()

	require.Equal(t, []scalar.Real{1, 2.5, -3}, scalar.Reals(1, 2.5, -3))
	require.Equal(t, [][]scalar.Real{{1, 2}, {3, 4}}, scalar.RealRows([]int{1, 2}, []int{3, 4}))
	require.Equal(t, []scalar.Complex{{Re: 1}, {Re: -2}}, scalar.Complexes(int8(1), int8(-2)))

	rs := scalar.RationalRows([]int64{1, -2}, []int64{0, 7})
	require.Len(t, rs, 2)
	require.Equal(t, "-2", rs[0][1].String())
	require.True(t, rs[1][0].IsZero())

	bs := scalar.BigFloats(uint8(3), uint8(4))
	require.Len(t, bs, 2)
	require.Equal(t, 4.0, bs[1].Float64())
}

func TestConverters_FullUnsignedRange(t *testing.T) {
	t.Parallel()

	const maxU64 = uint64(math.MaxUint64)
	rs := scalar.Rationals(maxU64, uint64(math.MaxInt64)+1, uint64(7))
	require.Equal(t, "18446744073709551615", rs[0].String())
	require.Equal(t, "9223372036854775808", rs[1].String())
	require.Equal(t, "7", rs[2].String())
	require.False(t, rs[0].Less(scalar.NewRational(0, 1)), "no sign flip")

	require.Equal(t, "-128", scalar.Rationals(int8(-128))[0].String())
	require.Equal(t, "-9223372036854775808", scalar.Rationals(int64(math.MinInt64))[0].String())

	bs := scalar.BigFloats(maxU64)
	require.InDelta(t, 1.8446744073709552e19, bs[0].Float64(), 1e4)
	require.False(t, bs[0].Less(scalar.NewBigFloat(0)))
}
