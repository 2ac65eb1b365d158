package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	VT   byte = 0x0B
	FF   byte = 0x0C
)

var Whitespaces = []byte{SP, HTAB, VT, FF, CR, LF}

func IsWhitespace(r rune) bool {
	for _, ws := range Whitespaces {
		if r == rune(ws) {
			return true
		}
	}
	return false
}

// ToLowerASCII folds only A-Z. Media types and extensions are ASCII tokens,
// so other bytes are left untouched.
func ToLowerASCII(s string) string {
	for idx := 0; idx < len(s); idx++ {
		if 'A' <= s[idx] && s[idx] <= 'Z' {
			b := []byte(s)
			for ; idx < len(b); idx++ {
				if 'A' <= b[idx] && b[idx] <= 'Z' {
					b[idx] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
