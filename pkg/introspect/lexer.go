package introspect

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokName tokenKind = iota
	tokString
	tokNumber
	tokOp
	tokNewline
	tokUnsupported // f-strings and other values a literal scan cannot evaluate
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

var stringPrefixes = map[string]bool{
	"r": true, "u": true, "b": true, "br": true, "rb": true,
	"f": true, "fr": true, "rf": true,
}

var twoCharOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true, "==": true, "!=": true,
	"<=": true, ">=": true, "**": true, "//": true, "->": true, ":=": true,
}

// lex splits Python source into the tokens the scanner needs. Newlines are
// only emitted outside brackets, so each tokNewline ends a logical line.
func lex(src string) ([]token, error) {
	var toks []token
	depth, line := 0, 1
	emit := func(kind tokenKind, text string) {
		toks = append(toks, token{kind: kind, text: text, line: line})
	}

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			if depth == 0 && len(toks) > 0 && toks[len(toks)-1].kind != tokNewline {
				emit(tokNewline, "")
			}
			line++
			i++
		case c == '\\' && i+1 < len(src) && src[i+1] == '\n':
			line++
			i += 2
		case c == ' ' || c == '\t' || c == '\r' || c == '\f':
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '\'' || c == '"':
			value, n, err := lexString(src[i:], false)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			emit(tokString, value)
			line += strings.Count(src[i:i+n], "\n")
			i += n
		case isDigit(c):
			j := i
			for j < len(src) && (isIdentChar(src[j]) || src[j] == '.') {
				j++
			}
			emit(tokNumber, src[i:j])
			i = j
		case isIdentStart(c):
			j := i
			for j < len(src) && isIdentChar(src[j]) {
				j++
			}
			word := src[i:j]
			prefix := strings.ToLower(word)
			if j < len(src) && (src[j] == '\'' || src[j] == '"') && stringPrefixes[prefix] {
				value, n, err := lexString(src[j:], strings.Contains(prefix, "r"))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				kind := tokString
				if strings.Contains(prefix, "f") {
					kind = tokUnsupported
				}
				emit(kind, value)
				line += strings.Count(src[j:j+n], "\n")
				i = j + n
				continue
			}
			emit(tokName, word)
			i = j
		default:
			if i+1 < len(src) && twoCharOps[src[i:i+2]] {
				emit(tokOp, src[i:i+2])
				i += 2
				continue
			}
			switch c {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			}
			emit(tokOp, string(c))
			i++
		}
	}
	if len(toks) > 0 && toks[len(toks)-1].kind != tokNewline {
		toks = append(toks, token{kind: tokNewline, line: line})
	}
	return toks, nil
}

// lexString reads a quoted literal at the start of s and returns its value
// and the number of bytes consumed.
func lexString(s string, raw bool) (string, int, error) {
	quote := s[:1]
	if strings.HasPrefix(s, quote+quote+quote) {
		quote = s[:3]
	}
	var b strings.Builder
	for i := len(quote); i < len(s); {
		if strings.HasPrefix(s[i:], quote) {
			return b.String(), i + len(quote), nil
		}
		c := s[i]
		if c == '\n' && len(quote) == 1 {
			return "", 0, fmt.Errorf("unterminated string")
		}
		if c == '\\' && i+1 < len(s) {
			if raw {
				b.WriteByte(c)
				b.WriteByte(s[i+1])
			} else {
				b.WriteString(unescape(s[i+1]))
			}
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated string")
}

func unescape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case '\n':
		return ""
	case '\\', '\'', '"':
		return string(c)
	default:
		return "\\" + string(c)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) }
