// SPDX-License-Identifier: EPL-2.0

package unsync

const (
	syncByte  = 0xFF
	guardByte = 0x00
	syncMask  = 0xE0
)

// needsGuard reports whether a 0xFF followed by next must get a guard byte.
func needsGuard(next byte) bool {
	return next == guardByte || next&syncMask == syncMask
}

// ResyncLen returns the length of data once every 0xFF 0x00 pair has lost
// its 0x00.
func ResyncLen(data []byte) int {
	count := 0
	for i := 0; i < len(data)-1; i++ {
		if data[i] == syncByte && data[i+1] == guardByte {
			count++
			i++ // pairs do not overlap
		}
	}

	return len(data) - count
}

// Resynchronize removes the guard byte from every 0xFF 0x00 pair.
// When there is nothing to remove, data is returned as is.
func Resynchronize(data []byte) []byte {
	n := ResyncLen(data)
	if n == len(data) {
		return data
	}

	out := make([]byte, 0, n)
	prevSync := false
	for _, b := range data {
		if prevSync && b == guardByte {
			prevSync = false
			continue
		}
		out = append(out, b)
		prevSync = b == syncByte
	}

	return out
}

// UnsyncLen returns the length of data once a guard byte has been inserted
// after every 0xFF that could be taken for a sync marker.
func UnsyncLen(data []byte) int {
	count := 0
	for i := 0; i < len(data)-1; i++ {
		if data[i] == syncByte && needsGuard(data[i+1]) {
			count++
		}
	}

	return len(data) + count
}

// Unsynchronize inserts a 0x00 after every 0xFF followed by 0x00 or by a
// byte with its top three bits set. When no guard is needed, data is
// returned as is.
func Unsynchronize(data []byte) []byte {
	n := UnsyncLen(data)
	if n == len(data) {
		return data
	}

	out := make([]byte, 0, n)
	for i, b := range data {
		out = append(out, b)
		if b == syncByte && i+1 < len(data) && needsGuard(data[i+1]) {
			out = append(out, guardByte)
		}
	}

	return out
}

// Needed reports whether Unsynchronize would change data.
func Needed(data []byte) bool {
	return UnsyncLen(data) != len(data)
}
