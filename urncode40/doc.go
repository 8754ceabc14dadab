// Package urncode40 implements URN Code 40, a reversible codec that packs
// container and cargo style identifiers into upper-case hexadecimal.
//
// # Standard Blocks
//
// The alphabet has 40 symbols:
//
//	value  0      space
//	values 1-26   A-Z
//	values 27-29  - . :
//	values 30-39  0-9
//
// Three symbols are packed into one 4-digit block as
// 1600*v1 + 40*v2 + v3 + 1, so the largest standard block is FA00.
// A short final triplet is padded with spaces.
//
// # Extension Blocks
//
// Values above FA00 introduce extension blocks:
//
//	FB nn <4-19 bytes>  run of 9-24 digits as a big-endian integer;
//	                    nn = (digits-9)<<4 | (bytes-4)
//	FC xx               one ASCII character outside the alphabet
//	FD xxxx             one 2-byte UTF-8 character (U+0080-U+07FF)
//	FE xxxxxx           one 3-byte UTF-8 character (U+0800-U+FFFF)
//
// Encode picks, run by run, whichever of standard packing and the FB block is
// shorter. Decode walks the stream block by block.
//
// # Example
//
//	Encode("ABC")              = "0694"
//	Encode("1234567890123456") = "FB730462D53C8ABAC0"
//	Encode("A&B")              = "0641FC260C81"
//
// # Padding
//
// The space symbol doubles as padding, so trailing spaces do not survive a
// round trip. See DecodeOptions.
//
// Lower-case ASCII letters are accepted and decode as upper case.
// Characters above U+FFFF cannot be encoded.
package urncode40
