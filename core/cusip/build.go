package cusip

import "github.com/gnp/cusip/core/checksum"

// BuildFromPayload constructs a CUSIP from an 8-character payload (the
// issuer number and issue number already concatenated), computing the check
// digit. The payload must satisfy the same character classes Parse enforces
// for positions 1 through 8.
func BuildFromPayload(payload string) (CUSIP, error) {
	if len(payload) != 8 {
		return CUSIP{}, &PayloadLengthError{Actual: len(payload)}
	}

	var c CUSIP
	copy(c.b[:8], payload)

	for i := 0; i < 8; i++ {
		if !checksum.IsValidChar(c.b[i]) {
			return CUSIP{}, &CharacterError{Char: c.b[i], Position: i + 1}
		}
	}

	c.b[8] = checksum.ComputeCheckDigit(c.b[:8])
	return c, nil
}

// BuildFromParts constructs a CUSIP from a 6-character issuer number and a
// 2-character issue number, computing the check digit. Character positions
// in any CharacterError are counted across the whole payload, so an
// offending issue number character reports position 7 or 8.
func BuildFromParts(issuerNum, issueNum string) (CUSIP, error) {
	if len(issuerNum) != 6 {
		return CUSIP{}, &IssuerNumLengthError{Actual: len(issuerNum)}
	}
	if len(issueNum) != 2 {
		return CUSIP{}, &IssueNumLengthError{Actual: len(issueNum)}
	}
	return BuildFromPayload(issuerNum + issueNum)
}
