package sdl

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	identRe     = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	configKeyRe = regexp.MustCompile(`^(\w+)\s*=\s*(.+)$`)
	modelAttrRe = regexp.MustCompile(`^@@(\w+)\s*(?:\((.*)\))?\s*$`)
)

// Parse reads a whole schema document. Malformed lines and blocks degrade
// to partially-populated entities instead of failing the parse; an error is
// returned only on an unexpected internal fault. The returned Document
// carries fresh identity tokens on every model, field and enum.
func Parse(text string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("parse schema: %v", r)
		}
	}()

	p := &parser{}
	doc = &Document{}
	for _, b := range ExtractBlocks(text) {
		switch b.Kind {
		case KindDatasource:
			// Last occurrence wins when duplicated.
			doc.Datasource = parseDatasource(b.Body)
		case KindGenerator:
			doc.Generator = parseGenerator(b.Body)
		case KindModel:
			doc.Models = append(doc.Models, p.parseModel(b.Name, b.Body))
		case KindEnum:
			doc.Enums = append(doc.Enums, p.parseEnum(b.Name, b.Body))
		}
	}
	return doc, nil
}

// parser holds the per-call identity counter. Nothing is shared between
// Parse invocations.
type parser struct {
	nextID int
}

func (p *parser) fresh() string {
	p.nextID++
	return fmt.Sprintf("%d", p.nextID)
}

func parseDatasource(body string) Datasource {
	var ds Datasource
	for key, value := range configPairs(body) {
		switch key {
		case "provider":
			ds.Provider = unquote(value)
		case "url":
			// May be env("NAME") or a quoted literal; kept raw.
			ds.URL = value
		}
	}
	return ds
}

func parseGenerator(body string) Generator {
	var gen Generator
	for key, value := range configPairs(body) {
		switch key {
		case "provider":
			gen.Provider = unquote(value)
		case "output":
			gen.Output = unquote(value)
		case "previewFeatures":
			gen.PreviewFeatures = identifierList(value)
		case "binaryTargets":
			gen.BinaryTargets = identifierList(value)
		}
	}
	return gen
}

// configPairs captures `key = value` lines of a datasource or generator
// body. Unrecognized keys survive here and are filtered by the caller.
func configPairs(body string) map[string]string {
	pairs := map[string]string{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := configKeyRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pairs[m[1]] = strings.TrimSpace(m[2])
	}
	return pairs
}

// identifierList parses a bracketed comma list of quoted identifiers, e.g.
// ["fullTextSearch", "views"].
func identifierList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil
	}
	var out []string
	for _, arg := range ScanArguments(raw[1 : len(raw)-1]) {
		v := unquote(arg.Value.Raw)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (p *parser) parseModel(name, body string) Model {
	m := Model{ID: p.fresh(), Name: name}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "@@") {
			if attr, ok := parseModelAttribute(line); ok {
				m.Attributes = append(m.Attributes, attr)
			}
			continue
		}
		if f, ok := p.parseFieldLine(line); ok {
			m.Fields = append(m.Fields, f)
		}
	}
	return m
}

func parseModelAttribute(line string) (ModelAttribute, bool) {
	m := modelAttrRe.FindStringSubmatch(line)
	if m == nil {
		return ModelAttribute{}, false
	}
	return ModelAttribute{Type: m[1], Args: ScanArguments(m[2])}, true
}

// parseFieldLine tokenizes `name Type[]? @attr ...`. Lines that do not
// start with two identifiers are skipped.
func (p *parser) parseFieldLine(line string) (Field, bool) {
	name, rest := splitToken(line)
	typeTok, rest := splitToken(rest)
	if !identRe.MatchString(name) || typeTok == "" {
		return Field{}, false
	}

	f := Field{ID: p.fresh(), Name: name, IsRequired: true}
	if strings.HasSuffix(typeTok, "?") {
		f.IsRequired = false
		typeTok = strings.TrimSuffix(typeTok, "?")
	}
	if strings.HasSuffix(typeTok, "[]") {
		f.IsList = true
		typeTok = strings.TrimSuffix(typeTok, "[]")
	}
	if !identRe.MatchString(typeTok) {
		return Field{}, false
	}
	f.Type = typeTok
	f.Attributes = scanFieldAttributes(rest)
	return f, true
}

// splitToken cuts the first whitespace-delimited token off s.
func splitToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// scanFieldAttributes walks the trailing text of a field line collecting
// `@name`, `@name(args)` and namespaced `@ns.Member(args)` occurrences. The
// namespaced form folds into one positional expression argument so that
// `@db.Uuid` parses as attribute db with argument Uuid.
func scanFieldAttributes(rest string) []Attribute {
	var attrs []Attribute
	for i := 0; i < len(rest); i++ {
		if rest[i] != '@' {
			continue
		}
		i++
		name, n := readIdent(rest[i:])
		if n == 0 {
			continue
		}
		i += n
		attr := Attribute{Name: name}

		if i < len(rest) && rest[i] == '.' {
			member, n := readIdent(rest[i+1:])
			if n > 0 {
				i += 1 + n
				raw := member
				if i < len(rest) && rest[i] == '(' {
					inner, n := readParenGroup(rest[i:])
					raw += "(" + inner + ")"
					i += n
				}
				attr.Args = []Argument{{Name: PositionalName, Value: Value{Kind: Expression, Raw: raw}}}
				attrs = append(attrs, attr)
				i--
				continue
			}
		}

		if i < len(rest) && rest[i] == '(' {
			inner, n := readParenGroup(rest[i:])
			attr.Args = ScanArguments(inner)
			i += n
		}
		attrs = append(attrs, attr)
		i--
	}
	return attrs
}

// readIdent returns the leading identifier of s and its length.
func readIdent(s string) (string, int) {
	n := 0
	for n < len(s) && (s[n] == '_' || isAlnum(s[n])) {
		n++
	}
	return s[:n], n
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

// readParenGroup consumes a balanced, quote-aware parenthesized group
// starting at s[0] == '(' and returns the inner text plus the number of
// bytes consumed including both parentheses.
func readParenGroup(s string) (string, int) {
	depth := 0
	inString := false
	var quote byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			if ch == '\\' {
				i++
			} else if ch == quote {
				inString = false
			}
			continue
		}
		switch ch {
		case '"', '\'':
			inString = true
			quote = ch
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], i + 1
			}
		}
	}
	// Unterminated group: take everything after the opening paren.
	return s[1:], len(s)
}

func (p *parser) parseEnum(name, body string) Enum {
	e := Enum{ID: p.fresh(), Name: name}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e.Values = append(e.Values, line)
	}
	return e
}

// unquote strips one layer of matching quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
