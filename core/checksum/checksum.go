// Package checksum implements the modulus 10 "double-add-double" check digit
// technique defined in Annex A of ANSI X9.6-2020, along with the character
// value mapping it operates on.
//
// The mapping assigns each permitted CUSIP character a numeric value:
// decimal digits '0' through '9' map to 0 through 9, uppercase letters 'A'
// through 'Z' map to 10 through 35, and the three Private Placement Number
// (PPN) symbols '*', '@' and '#' map to 36, 37 and 38.
//
// Two equivalent implementations of the check digit computation are
// provided: Checksum performs the doubling and digit-sum reduction
// arithmetically, and ChecksumTable replaces both steps with precomputed
// lookup tables. They always agree; the table form exists because it is the
// faster of the two and is what ComputeCheckDigit uses.
package checksum

// MaxCharValue is the largest value the character mapping produces ('#').
const MaxCharValue = 38

// charValues maps each byte to its CUSIP character value, or -1 if the byte
// is not a permitted CUSIP character. It is fixed at program start and never
// mutated.
var charValues = buildCharValues()

func buildCharValues() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = int8(c-'A') + 10
	}
	t['*'] = 36
	t['@'] = 37
	t['#'] = 38
	return t
}

// CharValue returns the checksum value of c and true if c is a permitted
// CUSIP character, or 0 and false otherwise.
func CharValue(c byte) (uint8, bool) {
	v := charValues[c]
	if v < 0 {
		return 0, false
	}
	return uint8(v), true
}

// IsValidChar reports whether c is a permitted CUSIP payload character:
// a decimal digit, an uppercase letter, or one of '*', '@' and '#'.
func IsValidChar(c byte) bool {
	return charValues[c] >= 0
}

// odds[v] is the digit sum of v reduced mod 10, for character values at odd
// (undoubled) positions. evens[v] is the digit sum of v*2 reduced mod 10,
// for character values at even (doubled) positions. Indexed by character
// value 0 through MaxCharValue.
var odds = [MaxCharValue + 1]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	1, 2, 3, 4, 5, 6, 7, 8, 9, 0,
	2, 3, 4, 5, 6, 7, 8, 9, 0, 1,
	3, 4, 5, 6, 7, 8, 9, 0, 1,
}

var evens = [MaxCharValue + 1]uint8{
	0, 2, 4, 6, 8, 1, 3, 5, 7, 9,
	2, 4, 6, 8, 0, 3, 5, 7, 9, 1,
	4, 6, 8, 0, 2, 5, 7, 9, 1, 3,
	6, 8, 0, 2, 4, 7, 9, 1, 3,
}

// charValue returns the checksum value of c, panicking on characters outside
// the permitted set. It is only reachable from the checksum functions, which
// are documented to require pre-validated input.
func charValue(c byte) uint8 {
	v := charValues[c]
	if v < 0 {
		panic("checksum: character outside the CUSIP character set")
	}
	return uint8(v)
}

// Checksum computes the check digit (0 through 9) for a payload using plain
// arithmetic. Characters are processed left to right and counted from one;
// values at even positions are doubled, any two-digit intermediate value is
// reduced to the sum of its decimal digits, and the reduced values are
// summed mod 10. The check digit is (10 - sum) mod 10.
//
// Every byte of payload must be a permitted CUSIP character (see
// IsValidChar); Checksum panics otherwise.
func Checksum(payload []byte) uint8 {
	sum := 0
	for i, c := range payload {
		v := int(charValue(c))
		if (i+1)%2 == 0 {
			v *= 2
		}
		sum += v/10 + v%10
	}
	return uint8((10 - sum%10) % 10)
}

// ChecksumTable computes the same check digit as Checksum, using the
// precomputed odds and evens tables in place of the doubling and digit-sum
// arithmetic.
//
// Every byte of payload must be a permitted CUSIP character (see
// IsValidChar); ChecksumTable panics otherwise.
func ChecksumTable(payload []byte) uint8 {
	sum := 0
	for i, c := range payload {
		v := charValue(c)
		if (i+1)%2 == 0 {
			sum += int(evens[v])
		} else {
			sum += int(odds[v])
		}
	}
	return uint8((10 - sum%10) % 10)
}

// ComputeCheckDigit computes the check digit for an 8-character CUSIP
// payload and returns it as an ASCII digit byte ('0' through '9').
//
// Every byte of payload must be a permitted CUSIP character; it panics
// otherwise. Validate the payload before calling.
func ComputeCheckDigit(payload []byte) byte {
	return '0' + ChecksumTable(payload)
}
