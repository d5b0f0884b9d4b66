package checksum

import "testing"

// benchPayloads covers the spread of digit-expansion work: all zeros needs
// none, the Apple common stock payload is typical, and all 'Z's maximizes it.
var benchPayloads = []string{
	"00000000",
	"03783310",
	"ZZZZZZZZ",
}

func BenchmarkChecksum(b *testing.B) {
	for _, p := range benchPayloads {
		payload := []byte(p)
		b.Run(p, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Checksum(payload)
			}
		})
	}
}

func BenchmarkChecksumTable(b *testing.B) {
	for _, p := range benchPayloads {
		payload := []byte(p)
		b.Run(p, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ChecksumTable(payload)
			}
		})
	}
}
