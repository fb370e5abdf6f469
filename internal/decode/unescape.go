package decode

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// legacyUnescape decodes %XX and %uXXXX escapes the way the browser's
// legacy unescape() does: each escape yields one UTF-16 code unit and any
// malformed sequence is copied through unchanged. It never fails.
func legacyUnescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' {
			if i+6 <= len(s) && s[i+1] == 'u' {
				if v, ok := hexUnit(s[i+2 : i+6]); ok {
					units = append(units, v)
					i += 6
					continue
				}
			}
			if i+3 <= len(s) {
				if v, ok := hexUnit(s[i+1 : i+3]); ok {
					units = append(units, v)
					i += 3
					continue
				}
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return string(utf16.Decode(units))
}

func hexUnit(h string) (uint16, bool) {
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// percentDecode decodes %XX escapes as UTF-8 bytes. Unlike query decoding,
// '+' is left alone.
func percentDecode(s string) (string, error) {
	return url.PathUnescape(s)
}
