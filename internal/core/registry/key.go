package registry

// A key packs a three-letter code and a namespace index into one integer:
//
//	bits 15+   namespace index
//	bits 10-14 first letter - 'A'
//	bits 5-9   second letter - 'A'
//	bits 0-4   third letter - 'A'
//
// Letters need 5 bits (26 < 32), so the encoding is invertible and no two
// (code, namespace) pairs share a key.
type key uint32

const (
	letterBits    = 5
	codeBits      = 3 * letterBits
	letterMask    = 1<<letterBits - 1
	maxKeyNSIndex = 1<<(32-codeBits) - 1
)

// keyOf returns the key of (code, nsIndex). ok is false when code is not three
// uppercase ASCII letters or nsIndex does not fit.
func keyOf(code string, nsIndex int) (k key, ok bool) {
	if len(code) != 3 || nsIndex < 0 || nsIndex > maxKeyNSIndex {
		return 0, false
	}
	var c uint32
	for i := 0; i < 3; i++ {
		ch := code[i]
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		c = c<<letterBits | uint32(ch-'A')
	}
	return key(uint32(nsIndex)<<codeBits | c), true
}

// decode is the inverse of keyOf.
func (k key) decode() (code string, nsIndex int) {
	b := [3]byte{
		byte(k>>(2*letterBits)&letterMask) + 'A',
		byte(k>>letterBits&letterMask) + 'A',
		byte(k&letterMask) + 'A',
	}
	return string(b[:]), int(k >> codeBits)
}
