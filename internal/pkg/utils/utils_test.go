package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChainID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"1", 1, false},
		{"8453", 8453, false},
		{"0x2105", 8453, false},
		{"0X1", 1, false},
		{" 10 ", 10, false},
		{"0", 0, true},
		{"0x0", 0, true},
		{"-1", 0, true},
		{"base", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseChainID(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseChainIDList(t *testing.T) {
	ids, err := ParseChainIDList("1, 10,,0x2105,10")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 10, 8453}, ids)

	ids, err = ParseChainIDList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseChainIDList("1,nope")
	assert.Error(t, err)
}

func TestFormatBigInt(t *testing.T) {
	amount, _ := new(big.Int).SetString("1234500000000000000", 10)
	got, err := FormatBigInt(amount, 18)
	require.NoError(t, err)
	assert.Equal(t, "1.2345", got)

	got, err = FormatBigInt(nil, 18)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = FormatBigInt(big.NewInt(42), 0)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestFormatUint64(t *testing.T) {
	got, err := FormatUint64(1_500_000_000, 9)
	require.NoError(t, err)
	assert.Equal(t, "1.5", got)

	got, err = FormatUint64(2_000_000_000, 9)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CHAINREGISTRY_TEST_ENV", "value")
	assert.Equal(t, "value", GetEnv("CHAINREGISTRY_TEST_ENV", "fallback"))

	t.Setenv("CHAINREGISTRY_TEST_ENV", "")
	assert.Equal(t, "fallback", GetEnv("CHAINREGISTRY_TEST_ENV", "fallback"))
}
