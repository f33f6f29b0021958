package scanner

import "strings"

type lexState int

const (
	stateCode lexState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
	stateRawString
)

// Mask blanks comments and the contents of string, character and raw string
// literals with spaces. The result has the same byte length as src and keeps
// every newline, so offsets and line numbers carry over to the raw text.
// Literal delimiters stay in place.
func Mask(src string) string {
	if src == "" {
		return src
	}
	out := []byte(src)
	blank := func(i int) {
		if out[i] != '\n' {
			out[i] = ' '
		}
	}

	state := stateCode
	rawClose := ""
	for i := 0; i < len(src); i++ {
		c := src[i]
		var next byte
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch state {
		case stateCode:
			switch {
			case c == '/' && next == '/':
				state = stateLineComment
				blank(i)
				blank(i + 1)
				i++
			case c == '/' && next == '*':
				state = stateBlockComment
				blank(i)
				blank(i + 1)
				i++
			case c == 'R' && next == '"' && rawPrefixOK(src, i):
				if closer, open, ok := rawDelimiter(src, i+1); ok {
					state = stateRawString
					rawClose = closer
					for j := i + 2; j <= open; j++ {
						blank(j)
					}
					i = open
				}
			case c == '"':
				state = stateString
			case c == '\'':
				// 1'000'000 and 0xFF'FF use ' as a digit separator.
				if inNumber(src, i) {
					continue
				}
				state = stateChar
			}

		case stateLineComment:
			if c == '\n' {
				state = stateCode
				continue
			}
			blank(i)

		case stateBlockComment:
			if c == '*' && next == '/' {
				blank(i)
				blank(i + 1)
				i++
				state = stateCode
				continue
			}
			blank(i)

		case stateString, stateChar:
			quote := byte('"')
			if state == stateChar {
				quote = '\''
			}
			switch {
			case c == '\\' && next != 0:
				blank(i)
				blank(i + 1)
				i++
			case c == quote:
				state = stateCode
			case c == '\n':
				// Unterminated literal: give up at end of line.
				state = stateCode
			default:
				blank(i)
			}

		case stateRawString:
			if strings.HasPrefix(src[i:], rawClose) {
				// Keep the closing quote, blank ")delim".
				for j := i; j < i+len(rawClose)-1; j++ {
					blank(j)
				}
				i += len(rawClose) - 1
				state = stateCode
				continue
			}
			blank(i)
		}
	}
	return string(out)
}

// rawDelimiter parses R"delim( starting at the quote. It returns the closing
// sequence )delim" and the index of the opening parenthesis.
func rawDelimiter(src string, quote int) (closer string, open int, ok bool) {
	const maxDelim = 16
	for j := quote + 1; j < len(src) && j <= quote+1+maxDelim; j++ {
		switch src[j] {
		case '(':
			return ")" + src[quote+1:j] + `"`, j, true
		case ')', '\\', ' ', '\t', '\n', '"':
			return "", 0, false
		}
	}
	return "", 0, false
}

// rawPrefixOK reports whether the R at i starts a raw string literal rather
// than ending an identifier. Encoding prefixes u8, u, U and L are allowed.
func rawPrefixOK(src string, i int) bool {
	start := i
	for start > 0 && isIdentByte(src[start-1]) {
		start--
	}
	switch src[start:i] {
	case "", "u8", "u", "U", "L":
		return true
	}
	return false
}

// inNumber reports whether the byte at i directly follows a numeric literal.
func inNumber(src string, i int) bool {
	start := i
	for start > 0 && (isIdentByte(src[start-1]) || src[start-1] == '\'') {
		start--
	}
	return start < i && isDigit(src[start])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitLines splits on '\n'. A trailing newline does not start another line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
