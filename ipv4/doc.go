// Package ipv4 validates dotted-quad IPv4 address strings.
//
// A valid address is exactly four groups of one to three ASCII digits
// separated by single dots, each group an integer in [0, 255]. Leading
// zeros are accepted and read as decimal ("012" is 12).
//
// Parse tokenizes the input by hand and returns the four segments or a
// wrapped sentinel error. Validate runs Parse and reports the outcome as
// structured zap diagnostics, returning only a bool.
//
//	ok := ipv4.Validate("12.123.223.3") // true
//	_, err := ipv4.Parse("666.222.012.424")
//	errors.Is(err, ipv4.ErrSegmentRange) // true
package ipv4
