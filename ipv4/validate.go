package ipv4

import (
	"errors"

	"go.uber.org/zap"
)

// expectedShape is included in structural diagnostics.
const expectedShape = "{0-255}.{0-255}.{0-255}.{0-255}"

// Validator reports validation outcomes to a zap logger.
// The zero value is not usable; call New.
type Validator struct {
	log *zap.Logger
}

// New returns a Validator logging to zap.L() unless WithLogger is given.
func New(opts ...Option) *Validator {
	v := &Validator{log: zap.L()}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate reports whether ip is a valid IPv4 address.
//
// Diagnostics are informational only:
//   - Warn "invalid address" when the string has the wrong shape;
//   - Warn "segment out of range" naming the first failing segment;
//   - Info "segment" once per segment when the address is valid.
func (v *Validator) Validate(ip string) bool {
	addr, err := Parse(ip)
	if err != nil {
		var se *SegmentError
		if errors.Is(err, ErrSegmentRange) && errors.As(err, &se) {
			v.log.Warn("segment out of range",
				zap.Int("segment", se.Index),
				zap.String("text", se.Text))

			return false
		}
		v.log.Warn("invalid address",
			zap.String("input", ip),
			zap.String("expected", expectedShape),
			zap.Error(err))

		return false
	}

	for _, s := range addr {
		v.log.Info("segment",
			zap.Int("index", s.Index),
			zap.String("text", s.Text),
			zap.Int("length", s.Len()))
	}

	return true
}

// Validate reports whether ip is a valid IPv4 address, logging
// diagnostics to the global zap logger (zap.L()). That logger discards
// everything until the program calls zap.ReplaceGlobals; use New with
// WithLogger to route diagnostics explicitly.
func Validate(ip string) bool {
	return New().Validate(ip)
}
