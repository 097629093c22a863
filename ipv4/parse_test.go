package ipv4_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/ipv4"
)

// TestParse_Valid checks well-formed inputs, including leading zeros.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in        string
		canonical string
		octets    [4]byte
	}{
		{"0.0.0.0", "0.0.0.0", [4]byte{0, 0, 0, 0}},
		{"12.123.223.3", "12.123.223.3", [4]byte{12, 123, 223, 3}},
		{"255.255.255.255", "255.255.255.255", [4]byte{255, 255, 255, 255}},
		{"012.001.00.0", "12.1.0.0", [4]byte{12, 1, 0, 0}},
		{"192.168.1.254", "192.168.1.254", [4]byte{192, 168, 1, 254}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			addr, err := ipv4.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.canonical, addr.String())
			assert.Equal(t, tc.octets, addr.Bytes())

			parts := strings.Split(tc.in, ".")
			for i, s := range addr {
				assert.Equal(t, i, s.Index)
				assert.Equal(t, parts[i], s.Text)
				assert.Equal(t, len(parts[i]), s.Len())
			}
		})
	}
}

// TestParse_Errors maps malformed inputs to their sentinel errors.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		seg  int // failing segment, -1 if not a *SegmentError
	}{
		{"Empty", "", ipv4.ErrEmptyInput, -1},
		{"ThreeGroups", "1.2.3", ipv4.ErrSegmentCount, -1},
		{"FiveGroups", "1.2.3.4.5", ipv4.ErrSegmentCount, -1},
		{"TrailingDot", "1.2.3.4.", ipv4.ErrSegmentCount, -1},
		{"NoDots", "1234", ipv4.ErrSegmentTooLong, 0},
		{"LeadingDot", ".1.2.3", ipv4.ErrEmptySegment, 0},
		{"DoubleDot", "1..2.3", ipv4.ErrEmptySegment, 1},
		{"OnlyDots", "...", ipv4.ErrEmptySegment, 0},
		{"FourDigits", "1.2.3.0255", ipv4.ErrSegmentTooLong, 3},
		{"Letter", "1.2.a.4", ipv4.ErrNonDigit, 2},
		{"Sign", "+1.2.3.4", ipv4.ErrNonDigit, 0},
		{"Space", "1.2.3.4 ", ipv4.ErrNonDigit, 3},
		{"Newline", "1.2.3.4\n", ipv4.ErrNonDigit, 3},
		{"Unicode", "1.2.3.٤", ipv4.ErrNonDigit, 3},
		{"Symbols", "+?.@#.)(.#", ipv4.ErrNonDigit, 0},
		{"RangeFirst", "666.222.012.424", ipv4.ErrSegmentRange, 0},
		{"RangeLast", "1.2.3.256", ipv4.ErrSegmentRange, 3},
		{"ShapeBeforeRange", "999.1.1", ipv4.ErrSegmentCount, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ipv4.Parse(tc.in)
			require.ErrorIs(t, err, tc.err)

			var se *ipv4.SegmentError
			if tc.seg < 0 {
				assert.False(t, errors.As(err, &se), "unexpected segment error: %v", err)

				return
			}
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.seg, se.Index)
			assert.Contains(t, se.Error(), fmt.Sprintf("segment %d", tc.seg))
		})
	}
}

func TestCanonical(t *testing.T) {
	s, err := ipv4.Canonical("010.000.1.001")
	require.NoError(t, err)
	assert.Equal(t, "10.0.1.1", s)

	_, err = ipv4.Canonical("10.0.1")
	assert.ErrorIs(t, err, ipv4.ErrSegmentCount)
}

// TestParse_AllSegmentValues accepts every value 0-255 in every position
// and in every zero-padded width that fits in three digits.
func TestParse_AllSegmentValues(t *testing.T) {
	for v := 0; v <= ipv4.MaxSegmentValue; v++ {
		for _, format := range []string{"%d", "%02d", "%03d"} {
			text := fmt.Sprintf(format, v)
			for pos := 0; pos < ipv4.Segments; pos++ {
				parts := []string{"1", "1", "1", "1"}
				parts[pos] = text
				in := strings.Join(parts, ".")
				addr, err := ipv4.Parse(in)
				require.NoError(t, err, in)
				assert.Equal(t, v, addr[pos].Value, in)
			}
		}
	}
}

// oracle: four dot-separated groups of 1-3 digits, each at most 255.
func oracle(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) < 1 || len(p) > 3 {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
		if n, _ := strconv.Atoi(p); n > 255 {
			return false
		}
	}

	return true
}
