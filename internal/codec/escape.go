package codec

import (
	"fmt"
	"strings"
)

var escaper = strings.NewReplacer(
	"%", "%25",
	",", "%2C",
	"\n", "%0A",
	"\r", "%0D",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// unescape reverses escape. Only the four sequences escape produces are
// accepted (hex digits in either case); any other '%' is an error.
func unescape(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+3 > len(s) {
			return "", fieldErr(ErrBadEscape, fmt.Sprintf("truncated escape in %q", s))
		}
		switch strings.ToUpper(s[i+1 : i+3]) {
		case "25":
			b.WriteByte('%')
		case "2C":
			b.WriteByte(',')
		case "0A":
			b.WriteByte('\n')
		case "0D":
			b.WriteByte('\r')
		default:
			return "", fieldErr(ErrBadEscape, fmt.Sprintf("unknown escape %q in %q", s[i:i+3], s))
		}
		i += 2
	}
	return b.String(), nil
}
