// Package cusip provides a validated CUSIP type for working with Committee
// on Uniform Security Identification Procedures identifiers as defined in
// ANSI X9.6-2020.
//
// A CUSIP is 9 ASCII characters: a six-character issuer number, a
// two-character issue number, and a single decimal check digit computed
// from the first eight characters with the modulus 10 "double-add-double"
// technique. Issuer and issue number positions accept decimal digits,
// uppercase letters, and the Private Placement Number (PPN) symbols '*',
// '@' and '#'.
//
// Parse validates structure only and accepts any well-formed identifier
// regardless of whether its check digit is mathematically correct.
// ParseStrict additionally requires the check digit to match the computed
// checksum. Lowercase input and surrounding whitespace are rejected by
// both; ParseLoose is the explicit normalizing alternative.
//
// All functions are pure and safe for concurrent use; the only shared data
// is the read-only character value table in core/checksum.
package cusip

import (
	"bytes"
	"strings"

	"github.com/gnp/cusip/core/checksum"
)

// CUSIP is a CUSIP identifier in confirmed valid format. The zero value is
// not a valid identifier; obtain values from Parse, ParseStrict, ParseLoose,
// BuildFromPayload or BuildFromParts.
//
// CUSIP values are immutable, comparable with ==, and usable as map keys.
type CUSIP struct {
	b [9]byte
}

// parseStructural applies the structural grammar: exact length, permitted
// character classes at positions 1 through 8, and an ASCII decimal digit at
// position 9. It performs no whitespace trimming and no case folding.
func parseStructural(value string) (CUSIP, error) {
	if len(value) != 9 {
		return CUSIP{}, &LengthError{Actual: len(value)}
	}

	var c CUSIP
	copy(c.b[:], value)

	for i := 0; i < 8; i++ {
		if !checksum.IsValidChar(c.b[i]) {
			return CUSIP{}, &CharacterError{Char: c.b[i], Position: i + 1}
		}
	}

	if cd := c.b[8]; cd < '0' || cd > '9' {
		return CUSIP{}, &CheckDigitError{Char: cd}
	}

	return c, nil
}

// Parse parses a string to a CUSIP, validating structure only: the input
// must be exactly 9 characters, positions 1 through 8 must be decimal
// digits, uppercase letters or one of '*', '@' and '#', and position 9 must
// be a decimal digit. The check digit is NOT verified against the payload;
// use ParseStrict for that.
func Parse(value string) (CUSIP, error) {
	return parseStructural(value)
}

// ParseStrict parses a string to a CUSIP, validating structure as Parse
// does and then requiring the supplied check digit to equal the one
// computed from the payload. On mismatch it returns a *ChecksumError
// carrying both digits.
func ParseStrict(value string) (CUSIP, error) {
	c, err := parseStructural(value)
	if err != nil {
		return CUSIP{}, err
	}

	expected := checksum.ComputeCheckDigit(c.b[:8])
	if c.b[8] != expected {
		return CUSIP{}, &ChecksumError{Expected: expected, Actual: c.b[8]}
	}

	return c, nil
}

// ParseLoose is the explicit normalizing alternative to ParseStrict: it
// trims leading and trailing whitespace, folds ASCII letters to uppercase,
// and then parses the result with ParseStrict.
func ParseLoose(value string) (CUSIP, error) {
	return ParseStrict(strings.ToUpper(strings.TrimSpace(value)))
}

// Validate reports whether value is a complete, correct CUSIP: structurally
// valid with a check digit that matches its payload. It is equivalent to
// ParseStrict succeeding.
func Validate(value string) bool {
	_, err := ParseStrict(value)
	return err == nil
}

// String returns the canonical 9-character text form.
func (c CUSIP) String() string {
	return string(c.b[:])
}

// Payload returns the first 8 characters, everything except the check digit.
func (c CUSIP) Payload() string {
	return string(c.b[:8])
}

// IssuerNum returns the issuer number, the first 6 characters.
func (c CUSIP) IssuerNum() string {
	return string(c.b[:6])
}

// IssueNum returns the issue number, characters 7 and 8.
func (c CUSIP) IssueNum() string {
	return string(c.b[6:8])
}

// CheckDigit returns the check digit as an ASCII digit byte.
func (c CUSIP) CheckDigit() byte {
	return c.b[8]
}

// Compare returns -1, 0 or 1 according to the lexicographic order of the
// canonical 9-character forms. Together with ==, this gives CUSIP values a
// total order.
func (c CUSIP) Compare(other CUSIP) int {
	return bytes.Compare(c.b[:], other.b[:])
}

// Less reports whether c orders before other.
func (c CUSIP) Less(other CUSIP) bool {
	return c.Compare(other) < 0
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c CUSIP) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStrict.
func (c *CUSIP) UnmarshalText(text []byte) error {
	parsed, err := ParseStrict(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HasPrivateIssuer reports whether the issuer number is reserved for
// internal use per sections 3.2 and C.8.1.3 of the standard: issuer numbers
// ending in "990" through "999" or "99A" through "99Z", and those from
// "990000" through "999999" or "99000A" through "99999Z".
func (c CUSIP) HasPrivateIssuer() bool {
	// "???99?"
	if c.b[3] == '9' && c.b[4] == '9' {
		return true
	}
	// "99000?" through "99999?"
	return c.b[0] == '9' && c.b[1] == '9' &&
		isDigit(c.b[2]) && isDigit(c.b[3]) && isDigit(c.b[4])
}

// IsPrivateIssue reports whether the issue number is reserved for internal
// use per section C.8.2.6 of the standard: issue numbers "90" through "99"
// and "9A" through "9Y".
func (c CUSIP) IsPrivateIssue() bool {
	if c.b[6] != '9' {
		return false
	}
	ones := c.b[7]
	return isDigit(ones) || (ones >= 'A' && ones <= 'Y')
}

// IsPrivateUse reports whether the identifier is reserved for private use,
// either because it has a private issuer or because it is a private issue.
func (c CUSIP) IsPrivateUse() bool {
	return c.HasPrivateIssuer() || c.IsPrivateIssue()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
