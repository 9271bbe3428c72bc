package bitflip

import "unicode/utf8"

// BitsPerByte is the number of flip positions in each byte of a name.
const BitsPerByte = 8

// Candidate is a name produced by flipping one bit of Original.
type Candidate struct {
	Original string `json:"original"`
	Flipped  string `json:"flipped"`
	Index    int    `json:"index"` // byte offset into Original
	Bit      uint   `json:"bit"`   // 0 is the least significant bit
}

// Mask returns the XOR mask applied to the flipped byte.
func (c Candidate) Mask() byte { return 1 << c.Bit }

// Flip returns name with bit of the byte at index inverted.
// It reports false if index or bit is out of range, or if the result is
// not valid UTF-8.
func Flip(name string, index int, bit uint) (string, bool) {
	if index < 0 || index >= len(name) || bit >= BitsPerByte {
		return "", false
	}
	b := []byte(name)
	b[index] ^= 1 << bit
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// Generate returns every valid single-bit flip of name.
func Generate(name string) []string {
	var out []string
	for _, c := range Candidates(name) {
		out = append(out, c.Flipped)
	}
	return out
}

// Candidates returns every valid single-bit flip of name along with the
// position that produced it.
func Candidates(name string) []Candidate {
	var out []Candidate
	for i := range len(name) {
		for bit := range uint(BitsPerByte) {
			if flipped, ok := Flip(name, i, bit); ok {
				out = append(out, Candidate{Original: name, Flipped: flipped, Index: i, Bit: bit})
			}
		}
	}
	return out
}
