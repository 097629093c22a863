package ipv4

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// Segments is the number of groups in a dotted quad.
	Segments = 4
	// MaxSegmentDigits bounds the length of one group.
	MaxSegmentDigits = 3
	// MaxSegmentValue is the largest value a group may hold.
	MaxSegmentValue = 255
)

// Segment is one dot-separated group of an address.
type Segment struct {
	Index int
	Text  string
	Value int
}

// Len returns the number of digits in the segment text.
func (s Segment) Len() int { return len(s.Text) }

// Address is a parsed, range-checked IPv4 address.
type Address [Segments]Segment

// String renders the canonical form, without leading zeros.
func (a Address) String() string {
	parts := make([]string, Segments)
	for i, s := range a {
		parts[i] = strconv.Itoa(s.Value)
	}

	return strings.Join(parts, ".")
}

// Bytes returns the four octets in network order.
func (a Address) Bytes() [Segments]byte {
	var b [Segments]byte
	for i, s := range a {
		b[i] = byte(s.Value)
	}

	return b
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger that receives diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}
