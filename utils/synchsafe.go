// SPDX-License-Identifier: EPL-2.0

package utils

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 0x0FFFFFFF

// IsSynchsafe reports whether none of the four bytes of v has its high bit set.
func IsSynchsafe(v uint32) bool {
	return v&0x80808080 == 0
}

// FromSynchsafe joins the four 7-bit groups of v into a 28-bit integer.
// The high bit of every byte is ignored.
func FromSynchsafe(v uint32) uint32 {
	return v&0x0000007F |
		(v&0x00007F00)>>1 |
		(v&0x007F0000)>>2 |
		(v&0x7F000000)>>3
}

// ToSynchsafe spreads v over four 7-bit groups. v must be below 2^28.
func ToSynchsafe(v uint32) uint32 {
	return v&0x0000007F |
		(v<<1)&0x00007F00 |
		(v<<2)&0x007F0000 |
		(v<<3)&0x7F000000
}
