package ipv4

import "fmt"

// Parse splits ip into four segments and range-checks them.
//
// Structure is checked for the whole string before any value is: an input
// with the wrong shape fails with a structural error even if one of its
// groups would also be out of range.
//
// Errors (wrapped, match with errors.Is):
//   - ErrEmptyInput, ErrSegmentCount
//   - ErrEmptySegment, ErrNonDigit, ErrSegmentTooLong (as *SegmentError)
//   - ErrSegmentRange (as *SegmentError), for the first failing segment
func Parse(ip string) (Address, error) {
	var addr Address
	if ip == "" {
		return addr, ErrEmptyInput
	}

	n, start := 0, 0
	for i := 0; i <= len(ip); i++ {
		if i < len(ip) && ip[i] != '.' {
			continue
		}
		if n == Segments {
			return Address{}, fmt.Errorf("%w: found more than %d in %q", ErrSegmentCount, Segments, ip)
		}
		seg, err := scanSegment(n, ip[start:i])
		if err != nil {
			return Address{}, err
		}
		addr[n] = seg
		n++
		start = i + 1
	}
	if n != Segments {
		return Address{}, fmt.Errorf("%w: found %d in %q", ErrSegmentCount, n, ip)
	}

	for _, s := range addr {
		if s.Value > MaxSegmentValue {
			return Address{}, &SegmentError{Index: s.Index, Text: s.Text, Err: ErrSegmentRange}
		}
	}

	return addr, nil
}

// Canonical parses ip and returns it without leading zeros.
func Canonical(ip string) (string, error) {
	addr, err := Parse(ip)
	if err != nil {
		return "", err
	}

	return addr.String(), nil
}

// scanSegment checks the shape of one group and decodes its value.
// The value is not range-checked here.
func scanSegment(idx int, text string) (Segment, error) {
	if text == "" {
		return Segment{}, &SegmentError{Index: idx, Text: text, Err: ErrEmptySegment}
	}
	value := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < '0' || ch > '9' {
			return Segment{}, &SegmentError{Index: idx, Text: text, Err: ErrNonDigit}
		}
		value = value*10 + int(ch-'0')
		if i+1 > MaxSegmentDigits {
			return Segment{}, &SegmentError{Index: idx, Text: text, Err: ErrSegmentTooLong}
		}
	}

	return Segment{Index: idx, Text: text, Value: value}, nil
}
