package cusip

import (
	"errors"
	"fmt"
)

// ErrInvalidCUSIP is the sentinel all parse and build errors unwrap to, so
// callers can test for "any CUSIP validation failure" with errors.Is while
// still matching the concrete error types with errors.As.
var ErrInvalidCUSIP = errors.New("invalid CUSIP")

// LengthError reports an input whose length is not exactly 9 characters.
type LengthError struct {
	Actual int // The length we found
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid CUSIP length %d characters when expecting 9", e.Actual)
}

func (e *LengthError) Unwrap() error { return ErrInvalidCUSIP }

// CharacterError reports a character outside the permitted CUSIP character
// set at a given position.
type CharacterError struct {
	Char     byte // The offending character
	Position int  // Its position in the input, counted from 1
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

func (e *CharacterError) Unwrap() error { return ErrInvalidCUSIP }

// CheckDigitError reports a check digit position that does not hold an ASCII
// decimal digit. This is a structural failure, distinct from ChecksumError.
type CheckDigitError struct {
	Char byte // The character found at the check digit position
}

func (e *CheckDigitError) Error() string {
	return fmt.Sprintf("check digit %q is not one ASCII decimal digit", e.Char)
}

func (e *CheckDigitError) Unwrap() error { return ErrInvalidCUSIP }

// ChecksumError reports a structurally valid input whose supplied check
// digit does not equal the value computed from the payload.
type ChecksumError struct {
	Expected byte // The check digit the payload requires
	Actual   byte // The check digit the input supplied
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("incorrect check digit %q when expecting %q", e.Actual, e.Expected)
}

func (e *ChecksumError) Unwrap() error { return ErrInvalidCUSIP }

// PayloadLengthError reports a payload passed to BuildFromPayload whose
// length is not exactly 8 characters.
type PayloadLengthError struct {
	Actual int
}

func (e *PayloadLengthError) Error() string {
	return fmt.Sprintf("invalid payload length %d characters when expecting 8", e.Actual)
}

func (e *PayloadLengthError) Unwrap() error { return ErrInvalidCUSIP }

// IssuerNumLengthError reports an issuer number passed to BuildFromParts
// whose length is not exactly 6 characters.
type IssuerNumLengthError struct {
	Actual int
}

func (e *IssuerNumLengthError) Error() string {
	return fmt.Sprintf("invalid issuer number length %d characters when expecting 6", e.Actual)
}

func (e *IssuerNumLengthError) Unwrap() error { return ErrInvalidCUSIP }

// IssueNumLengthError reports an issue number passed to BuildFromParts whose
// length is not exactly 2 characters.
type IssueNumLengthError struct {
	Actual int
}

func (e *IssueNumLengthError) Error() string {
	return fmt.Sprintf("invalid issue number length %d characters when expecting 2", e.Actual)
}

func (e *IssueNumLengthError) Unwrap() error { return ErrInvalidCUSIP }
