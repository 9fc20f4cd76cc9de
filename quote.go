package testharness

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// debugQuote renders s as a double-quoted literal. Quotes, backslashes and the
// usual control characters get short escapes; non-printable and grapheme
// extending characters are written as \u{hex}.
func debugQuote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case 0:
			b.WriteString(`\0`)
		default:
			if !strconv.IsPrint(r) || isGraphemeExtend(r) {
				fmt.Fprintf(&b, `\u{%x}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

func isGraphemeExtend(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend)
}

var lineSeparatorEscapes = map[string]string{
	`\u2028`: "\u2028",
	`\u2029`: "\u2029",
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the raw characters. Every backslash in encoder output
// starts an escape, so escapes are skipped whole.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])

			continue
		}

		if i+6 <= len(data) {
			if raw, ok := lineSeparatorEscapes[string(data[i:i+6])]; ok {
				out = append(out, raw...)
				i += 5

				continue
			}
		}

		out = append(out, data[i], data[i+1])
		i++
	}

	return out
}
