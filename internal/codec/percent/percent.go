// Package percent реализует две таблицы процентного кодирования:
// современную (encodeURIComponent, UTF-8 байты как %XX) и унаследованную
// (escape, UTF-16 кодовые единицы как %XX или %uXXXX).
package percent

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"webtools/internal/domain/models"
)

const upperhex = "0123456789ABCDEF"

// MalformedError описывает битую escape-последовательность при декодировании
type MalformedError struct {
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v at position %d: %s", models.ErrMalformed, e.Offset, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return models.ErrMalformed
}

func malformed(offset int, reason string) error {
	return &MalformedError{Offset: offset, Reason: reason}
}

// EncodeComponent кодирует строку по правилам encodeURIComponent.
// Невалидные UTF-8 байты кодируются как U+FFFD.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r < utf8.RuneSelf && !shouldEscapeComponent(byte(r)) {
			b.WriteByte(byte(r))
			continue
		}

		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for _, c := range buf[:n] {
			writeByteEscape(&b, c)
		}
	}
	return b.String()
}

// DecodeComponent - обратная операция к EncodeComponent (decodeURIComponent).
// Экранированные байты >= 0x80 должны складываться в валидную UTF-8 последовательность.
func DecodeComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		start := i
		c, err := unhexPair(s, i)
		if err != nil {
			return "", err
		}
		i += 3

		if c < utf8.RuneSelf {
			b.WriteByte(c)
			continue
		}

		n := utf8SequenceLen(c)
		if n == 0 {
			return "", malformed(start, "invalid UTF-8 lead byte")
		}

		var seq [utf8.UTFMax]byte
		seq[0] = c
		for k := 1; k < n; k++ {
			if i >= len(s) || s[i] != '%' {
				return "", malformed(start, "truncated UTF-8 sequence")
			}
			cont, err := unhexPair(s, i)
			if err != nil {
				return "", err
			}
			seq[k] = cont
			i += 3
		}

		if !utf8.Valid(seq[:n]) {
			return "", malformed(start, "invalid UTF-8 sequence")
		}
		b.Write(seq[:n])
	}

	return b.String(), nil
}

// Escape кодирует строку по правилам устаревшего escape: работает с UTF-16
// кодовыми единицами, символы вне Latin-1 превращаются в %uXXXX.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, u := range utf16.Encode([]rune(s)) {
		switch {
		case u < utf8.RuneSelf && !shouldEscapeLegacy(byte(u)):
			b.WriteByte(byte(u))
		case u < 0x100:
			writeByteEscape(&b, byte(u))
		default:
			b.WriteString("%u")
			b.WriteByte(upperhex[u>>12&0xF])
			b.WriteByte(upperhex[u>>8&0xF])
			b.WriteByte(upperhex[u>>4&0xF])
			b.WriteByte(upperhex[u&0xF])
		}
	}
	return b.String()
}

// Unescape - строгая обратная операция к Escape. В отличие от браузерного
// unescape, битые последовательности возвращают ошибку, а не проходят как есть.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			r, size := utf8.DecodeRuneInString(s[i:])
			units = utf16.AppendRune(units, r)
			i += size
			continue
		}

		if i+1 < len(s) && s[i+1] == 'u' {
			if i+6 > len(s) {
				return "", malformed(i, "expected four hex digits after %u")
			}
			var v uint16
			for _, c := range []byte(s[i+2 : i+6]) {
				d, ok := unhex(c)
				if !ok {
					return "", malformed(i, "expected four hex digits after %u")
				}
				v = v<<4 | uint16(d)
			}
			units = append(units, v)
			i += 6
			continue
		}

		c, err := unhexPair(s, i)
		if err != nil {
			return "", err
		}
		units = append(units, uint16(c))
		i += 3
	}

	return string(utf16.Decode(units)), nil
}

// A-Z a-z 0-9 - _ . ! ~ * ' ( )
func shouldEscapeComponent(c byte) bool {
	if isAlnum(c) {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// A-Z a-z 0-9 @ * _ + - . /
func shouldEscapeLegacy(c byte) bool {
	if isAlnum(c) {
		return false
	}
	switch c {
	case '@', '*', '_', '+', '-', '.', '/':
		return false
	}
	return true
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func writeByteEscape(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0xF])
}

// unhexPair читает %XX начиная с позиции i (s[i] == '%')
func unhexPair(s string, i int) (byte, error) {
	if i+2 >= len(s) {
		return 0, malformed(i, "expected two hex digits after %")
	}
	hi, ok1 := unhex(s[i+1])
	lo, ok2 := unhex(s[i+2])
	if !ok1 || !ok2 {
		return 0, malformed(i, "expected two hex digits after %")
	}
	return hi<<4 | lo, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func utf8SequenceLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 0
}
