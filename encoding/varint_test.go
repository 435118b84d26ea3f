package encoding

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

func TestAppendUvarint_KnownValues(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		got := AppendUvarint(nil, tt.value)
		require.Equal(t, tt.want, got, "value %d", tt.value)
		require.Equal(t, len(tt.want), UvarintLen(tt.value))

		v, n, err := Uvarint(got)
		require.NoError(t, err)
		require.Equal(t, tt.value, v)
		require.Equal(t, len(tt.want), n)
	}
}

func TestUvarint_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 10_000 {
		v := rng.Uint64() >> (rng.Intn(64))
		require.Equal(t, binary.AppendUvarint(nil, v), AppendUvarint(nil, v))
	}
}

func TestUvarint_ReadsOnlyFirstValue(t *testing.T) {
	data := AppendUvarint(AppendUvarint(nil, 1000), 5)

	v, n, err := Uvarint(data)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), v)
	require.Equal(t, 2, n)
}

func TestUvarint_Corrupt(t *testing.T) {
	cases := map[string]struct {
		data []byte
		kind error
	}{
		"empty":              {nil, errs.ErrUnterminatedVarint},
		"continuation only":  {[]byte{0x80}, errs.ErrUnterminatedVarint},
		"truncated multi":    {[]byte{0xff, 0xff, 0x80}, errs.ErrUnterminatedVarint},
		"eleven bytes":       {[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, errs.ErrVarintOverflow},
		"tenth byte too big": {[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}, errs.ErrVarintOverflow},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Uvarint(tc.data)
			require.ErrorIs(t, err, errs.ErrCorruptData)
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestZigZag(t *testing.T) {
	tests := []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.unsigned, ZigZag(tt.signed), "zigzag(%d)", tt.signed)
		require.Equal(t, tt.signed, UnZigZag(tt.unsigned), "unzigzag(%d)", tt.unsigned)
	}
}

func TestZigZag_SmallMagnitudesStaySmall(t *testing.T) {
	for n := int64(-63); n <= 63; n++ {
		require.Equal(t, 1, UvarintLen(ZigZag(n)), "n=%d", n)
	}
}
