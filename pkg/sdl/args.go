package sdl

import "strings"

// ScanArguments splits the raw text between an attribute's parentheses into
// its top-level comma-separated arguments. Commas nested inside brackets,
// braces, parentheses or quoted strings do not split. Each argument is
// split on its first top-level colon into name and value; arguments without
// a colon are positional and stored under PositionalName.
func ScanArguments(raw string) []Argument {
	var args []Argument

	depth := 0
	inString := false
	var quote byte
	var buf strings.Builder
	// Index of the name/value colon within buf, -1 while unseen. A colon at
	// position 0 is never a separator.
	colon := -1

	flush := func() {
		chunk := buf.String()
		buf.Reset()
		c := colon
		colon = -1
		if strings.TrimSpace(chunk) == "" {
			return
		}
		name := PositionalName
		value := chunk
		if c > 0 {
			name = strings.TrimSpace(chunk[:c])
			value = chunk[c+1:]
		}
		args = append(args, Argument{Name: name, Value: classifyValue(value)})
	}

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			if ch == '\\' && i+1 < len(raw) {
				buf.WriteByte(ch)
				i++
				buf.WriteByte(raw[i])
				continue
			}
			if ch == quote {
				inString = false
			}
			buf.WriteByte(ch)
			continue
		}
		switch ch {
		case '"', '\'':
			inString = true
			quote = ch
			buf.WriteByte(ch)
		case '[', '{', '(':
			depth++
			buf.WriteByte(ch)
		case ']', '}', ')':
			depth--
			buf.WriteByte(ch)
		case ',':
			if depth == 0 {
				flush()
			} else {
				buf.WriteByte(ch)
			}
		case ':':
			if depth == 0 && colon < 0 && buf.Len() > 0 {
				colon = buf.Len()
			}
			buf.WriteByte(ch)
		default:
			buf.WriteByte(ch)
		}
	}
	flush()

	return args
}

// classifyValue trims the raw value and tags it: a value fully wrapped in
// matching single or double quotes is a Literal, everything else is an
// Expression.
func classifyValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if isQuoted(trimmed) {
		return Value{Kind: Literal, Raw: trimmed}
	}
	return Value{Kind: Expression, Raw: trimmed}
}

// isQuoted reports whether s is fully wrapped in matching quotes.
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}
