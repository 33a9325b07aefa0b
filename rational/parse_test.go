package rational_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/sternbrocot/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// ParseNumber
//----------------------------------------------------------------------------//

// TestParseNumber_Integer covers the {integer}.? form with and without the trailing dot.
func TestParseNumber_Integer(t *testing.T) {
	cases := []struct {
		s        string
		mantissa int64
		exponent int64
	}{
		{"1", 1, 0},
		{"2", 2, 0},
		{"12345", 12345, 0},
		{"67890", 6789, 1},
		{"01", 1, 0},
		{"0003", 3, 0},
		{"12000", 12, 3},
		{"230000", 23, 4},
		{"00034500000", 345, 5},
		{"+1", 1, 0},
		{"-1", -1, 0},
		{"-120", -12, 1},
	}
	for _, tc := range cases {
		for _, s := range []string{tc.s, tc.s + "."} {
			t.Run(s, func(t *testing.T) {
				got, err := rational.ParseNumber(s)
				require.NoError(t, err)
				assert.Equal(t, tc.mantissa, got.Mantissa.Int64(), "mantissa")
				assert.Equal(t, tc.exponent, got.Exponent.Int64(), "exponent")
			})
		}
	}
}

// TestParseNumber_Fractional covers the {former}.{latter} and .{latter} forms.
func TestParseNumber_Fractional(t *testing.T) {
	cases := []struct {
		s        string
		mantissa int64
		exponent int64
	}{
		{".1", 1, -1},
		{".12345", 12345, -5},
		{".67890", 6789, -4},
		{".002", 2, -3},
		{".00034500000", 345, -6},
		{"0.1", 1, -1},
		{"1.2", 12, -1},
		{"0010.3", 103, -1},
		{"678.90", 6789, -1},
		{" 001010. 01 ", 101001, -2},
		{"0001230.00034500000", 1230000345, -6},
		{"-0.25", -25, -2},
		{"1\t2.5\n", 125, -1},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			got, err := rational.ParseNumber(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.mantissa, got.Mantissa.Int64(), "mantissa")
			assert.Equal(t, tc.exponent, got.Exponent.Int64(), "exponent")
		})
	}
}

// TestParseNumber_Exponent covers the [eE][+-]?digits suffix.
func TestParseNumber_Exponent(t *testing.T) {
	cases := []struct {
		s        string
		mantissa int64
		exponent int64
	}{
		{"1e0", 1, 0},
		{"1e+0", 1, 0},
		{"1e-0", 1, 0},
		{"1e4", 1, 4},
		{"1E+4", 1, 4},
		{"1E-4", 1, -4},
		{"1.2e3", 12, 2},
		{"0010.3e-10", 103, -11},
		{"12.345e3", 12345, 0},
		{"678.900e0", 6789, -1},
		{"001010.01e003", 101001, 1},
		{"0001230.00034500000e0000012", 1230000345, 6},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			got, err := rational.ParseNumber(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.mantissa, got.Mantissa.Int64(), "mantissa")
			assert.Equal(t, tc.exponent, got.Exponent.Int64(), "exponent")
		})
	}
}

// TestParseNumber_Zero verifies every spelling of zero collapses to {0, 0}.
func TestParseNumber_Zero(t *testing.T) {
	for _, s := range []string{"0", "000", "0.", "0.0", ".0", "00.000", "-0", "+0.0e12", "0e-5"} {
		t.Run(s, func(t *testing.T) {
			got, err := rational.ParseNumber(s)
			require.NoError(t, err)
			assert.True(t, got.IsZero())
			assert.Equal(t, 0, got.Mantissa.Sign())
			assert.Equal(t, 0, got.Exponent.Sign())
		})
	}
}

// TestParseNumber_Reject verifies malformed tokens return ErrMalformedNumber.
func TestParseNumber_Reject(t *testing.T) {
	for _, s := range []string{
		"", " ", ".", "+", "-", "+.", "1e", "1e+", "1e-", "1E", "1+", "1-", "1+e", "e1",
		"+-1", "--1", "1.2.3", "1..", "..1", "1e2e3", "1e2.5", "abc", "0x10", "1/2",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := rational.ParseNumber(s)
			assert.ErrorIs(t, err, rational.ErrMalformedNumber)
		})
	}
}

// TestParseNumber_Normalized checks that no nonzero mantissa is a multiple of 10
// and that the value survives the round trip through *big.Rat.
func TestParseNumber_Normalized(t *testing.T) {
	ten := big.NewInt(10)
	cases := map[string]string{
		"100":          "100",
		"1.500":        "3/2",
		"-2.50e2":      "-250",
		"12e-3":        "3/250",
		"0.000100":     "1/10000",
		"9990000e-4":   "999",
		"3.14159":      "314159/100000",
		"7000000000e9": "7000000000000000000",
	}
	for s, want := range cases {
		t.Run(s, func(t *testing.T) {
			got, err := rational.ParseNumber(s)
			require.NoError(t, err)
			r := new(big.Int).Rem(got.Mantissa, ten)
			assert.NotEqual(t, 0, r.Sign(), "mantissa %s divisible by 10", got.Mantissa)

			expected, ok := new(big.Rat).SetString(want)
			require.True(t, ok)
			assert.Equal(t, 0, got.Rat().Cmp(expected), "value %s, want %s", got.Rat(), expected)
		})
	}
}

// TestParseNumber_HugeDigits verifies arbitrary-precision mantissas.
func TestParseNumber_HugeDigits(t *testing.T) {
	s := "123456789012345678901234567890123456789000"
	got, err := rational.ParseNumber(s)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890123456789", got.Mantissa.String())
	assert.Equal(t, int64(3), got.Exponent.Int64())
}

//----------------------------------------------------------------------------//
// ParseFraction
//----------------------------------------------------------------------------//

// TestParseFraction_Values checks exact, unreduced results.
func TestParseFraction_Values(t *testing.T) {
	cases := []struct {
		s   string
		num string
		den string
	}{
		{"1", "1", "1"},
		{"2", "2", "1"},
		{"2.5", "25", "10"},
		{"1e+0", "1", "1"},
		{"1e4", "10000", "1"},
		{"1e-4", "1", "10000"},
		{"1E+4", "10000", "1"},
		{"1.2e3", "1200", "1"},
		{"0010.3e-10", "103", "100000000000"},
		{"12.345e3", "12345", "1"},
		{"678.900e0", "6789", "10"},
		{"001010.01000", "101001", "100"},
		{"0001230.0003450000", "1230000345", "1000000"},
		{"1.23e4 / 567", "12300", "567"},
		{"3/5", "3", "5"},
		{"6/10", "6", "10"},
		{"1/-2", "-1", "2"},
		{"-1/-2", "1", "2"},
		{"-1/2", "-1", "2"},
		{"1.5/2.5", "15", "25"},
		{"1/2.5e-3", "10000", "25"},
		{"0.0", "0", "1"},
		{"0/7", "0", "1"},
		{"-0.00/3e100", "0", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			got, err := rational.ParseFraction(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.num, got.Num.String(), "num")
			assert.Equal(t, tc.den, got.Den.String(), "den")
		})
	}
}

// TestParseFraction_Reject verifies the rejection taxonomy.
func TestParseFraction_Reject(t *testing.T) {
	cases := []struct {
		s   string
		err error
	}{
		{"1/0", rational.ErrZeroDenominator},
		{"1/0.000", rational.ErrZeroDenominator},
		{"0/0", rational.ErrZeroDenominator},
		{"", rational.ErrMalformedFraction},
		{"./1", rational.ErrMalformedFraction},
		{"1/", rational.ErrMalformedFraction},
		{"/2", rational.ErrMalformedFraction},
		{"1/2/3", rational.ErrMalformedFraction},
		{"1e/2", rational.ErrMalformedFraction},
		{"x", rational.ErrMalformedFraction},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			got, err := rational.ParseFraction(tc.s)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, got.Num, "no partial result")
			assert.Nil(t, got.Den, "no partial result")
		})
	}
}

// TestParseFraction_SideErrorWrapped ensures the side's own error stays visible.
func TestParseFraction_SideErrorWrapped(t *testing.T) {
	_, err := rational.ParseFraction("1.2.3/4")
	require.Error(t, err)
	assert.ErrorIs(t, err, rational.ErrMalformedFraction)
	assert.ErrorIs(t, err, rational.ErrMalformedNumber)
}

// TestParseFraction_ExponentRange guards against gigantic powers of ten.
func TestParseFraction_ExponentRange(t *testing.T) {
	_, err := rational.ParseFraction("1e100001")
	assert.ErrorIs(t, err, rational.ErrExponentRange)

	_, err = rational.ParseFraction("1/1e100001")
	assert.ErrorIs(t, err, rational.ErrExponentRange)

	f, err := rational.ParseFraction("1e100000/1e100000")
	require.NoError(t, err)
	assert.Equal(t, "1/1", f.String())
}

// TestParseFraction_ValuePreserved checks the fraction equals the decimal value.
func TestParseFraction_ValuePreserved(t *testing.T) {
	for _, s := range []string{"2.5", "-0.125", "1.23e4/567", "7/-0.35", "3.14159e2/1e-2"} {
		t.Run(s, func(t *testing.T) {
			f, err := rational.ParseFraction(s)
			require.NoError(t, err)
			assert.Equal(t, 1, f.Den.Sign(), "den must be positive")
		})
	}

	f, err := rational.ParseFraction("7/-0.35")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Rat().Cmp(big.NewRat(-20, 1)))
}

//----------------------------------------------------------------------------//
// Fraction helpers
//----------------------------------------------------------------------------//

// TestFraction_Helpers covers String, Equal and Reduce.
func TestFraction_Helpers(t *testing.T) {
	f := rational.NewFraction(6, 10)
	assert.Equal(t, "6/10", f.String())
	assert.True(t, f.Equal(rational.NewFraction(6, 10)))
	assert.False(t, f.Equal(rational.NewFraction(3, 5)), "Equal is component-wise")

	r := f.Reduce(big.NewInt(2))
	assert.True(t, r.Equal(rational.NewFraction(3, 5)))
	assert.Equal(t, "6/10", f.String(), "Reduce must not mutate the receiver")

	c := rational.Frac(f.Num, f.Den)
	c.Num.SetInt64(99)
	assert.Equal(t, int64(6), f.Num.Int64(), "Frac must copy")
}
