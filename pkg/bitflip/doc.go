// Package bitflip enumerates single-bit corruptions of package names.
//
// # Overview
//
// A bit flip changes exactly one bit in one byte of a name. A name of n
// bytes has 8*n possible flips; flips that leave the name as invalid UTF-8
// are dropped, since no registry can publish such a name.
//
//	bitflip.Generate("ab")
//	// ["`b" "cb" "eb" "ib" "qb" "Ab" "!b" "ac" "a`" "af" "aj" "ar" "aB" "a\""]
//
// # Ordering
//
// Candidates are produced in a fixed order: byte positions ascending, and
// for each position bits 0 through 7 ascending. Results are not
// deduplicated; two flips that produce the same string are both returned.
//
// [Candidates] returns the same sequence with the byte index and bit that
// produced each name, for reporting.
package bitflip
