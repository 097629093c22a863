package ipv4

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Parse.
var (
	// ErrEmptyInput indicates the whole input string is empty.
	ErrEmptyInput = errors.New("ipv4: input is empty")
	// ErrSegmentCount indicates the input does not split into exactly four groups.
	ErrSegmentCount = errors.New("ipv4: address must have exactly four dot-separated segments")
	// ErrEmptySegment indicates a group with no digits.
	ErrEmptySegment = errors.New("ipv4: segment is empty")
	// ErrNonDigit indicates a group containing a character other than 0-9.
	ErrNonDigit = errors.New("ipv4: segment contains a non-digit character")
	// ErrSegmentTooLong indicates a group of more than three digits.
	ErrSegmentTooLong = errors.New("ipv4: segment has more than three digits")
	// ErrSegmentRange indicates a group whose value exceeds 255.
	ErrSegmentRange = errors.New("ipv4: segment not in range 0-255")
)

// SegmentError reports which segment failed and why.
type SegmentError struct {
	Index int    // 0-based segment position
	Text  string // raw segment text
	Err   error  // one of the sentinel errors
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): %v", e.Index, e.Text, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
