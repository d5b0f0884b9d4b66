package cusip

// CINS is a CUSIP International Numbering System identifier: a CUSIP whose
// first character is a letter, naming the country or geographic region of
// the issuer. Obtain values from AsCINS.
type CINS struct {
	cusip CUSIP
}

// IsCINS reports whether the identifier is a CINS number, i.e. its first
// character is a letter. Digits and the PPN symbols are not country codes.
func (c CUSIP) IsCINS() bool {
	return c.b[0] >= 'A' && c.b[0] <= 'Z'
}

// AsCINS returns the CINS view of the identifier and true if it is a CINS
// number, or a zero CINS and false otherwise.
func (c CUSIP) AsCINS() (CINS, bool) {
	if !c.IsCINS() {
		return CINS{}, false
	}
	return CINS{cusip: c}, true
}

// CUSIP returns the underlying CUSIP.
func (n CINS) CUSIP() CUSIP {
	return n.cusip
}

// String returns the canonical 9-character text form of the underlying
// CUSIP.
func (n CINS) String() string {
	return n.cusip.String()
}

// CountryCode returns the CINS country code, the first character.
func (n CINS) CountryCode() byte {
	return n.cusip.b[0]
}

// IsBase reports whether the country code is one of the assigned codes,
// excluding the unused letters 'I', 'O' and 'Z'.
func (n CINS) IsBase() bool {
	return !n.IsExtended()
}

// IsExtended reports whether the country code is one of the unused letters
// 'I', 'O' and 'Z'. The standard defines CINS numbers as all CUSIPs
// starting with a letter, so these still classify as CINS.
func (n CINS) IsExtended() bool {
	switch n.cusip.b[0] {
	case 'I', 'O', 'Z':
		return true
	}
	return false
}

// IssuerNum returns the CINS issuer number, the 5 characters following the
// country code.
func (n CINS) IssuerNum() string {
	return string(n.cusip.b[1:6])
}

// IssueNum returns the issue number, the same 2 characters as for the
// underlying CUSIP.
func (n CINS) IssueNum() string {
	return n.cusip.IssueNum()
}
