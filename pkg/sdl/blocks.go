package sdl

import (
	"regexp"
	"strings"
)

// BlockKind is the keyword of a top-level declaration.
type BlockKind string

const (
	KindDatasource BlockKind = "datasource"
	KindGenerator  BlockKind = "generator"
	KindModel      BlockKind = "model"
	KindEnum       BlockKind = "enum"
)

// Block is one top-level `kind name { ... }` declaration with its raw body.
type Block struct {
	Kind BlockKind
	Name string
	Body string
}

// blockHeaderRe matches the opening of a top-level declaration up to and
// including its `{`. The body is then taken with a depth-counting scan
// rather than a pattern, so braces inside attribute arguments cannot
// truncate a block.
var blockHeaderRe = regexp.MustCompile(`(?m)^[ \t]*(datasource|generator|model|enum)\s+(\w+)\s*\{`)

// StripComments removes `//` comments line by line. The cut is quote-blind:
// a `//` inside a quoted string is still treated as a comment start. This
// mirrors the behavior the rest of the pipeline is written against.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// ExtractBlocks strips comments and returns every top-level declaration in
// source order.
func ExtractBlocks(text string) []Block {
	text = StripComments(text)

	var blocks []Block
	for _, loc := range blockHeaderRe.FindAllStringSubmatchIndex(text, -1) {
		kind := text[loc[2]:loc[3]]
		name := text[loc[4]:loc[5]]
		// loc[1] is just past the opening brace.
		body, ok := scanBody(text[loc[1]:])
		if !ok {
			continue
		}
		blocks = append(blocks, Block{
			Kind: BlockKind(kind),
			Name: name,
			Body: body,
		})
	}
	return blocks
}

// scanBody consumes text after an opening brace up to its matching close,
// counting brace depth and skipping quoted strings. Strings do not span
// lines, so a quote left unterminated (comment stripping can cut one off)
// ends at the newline instead of swallowing the rest of the document. It
// returns the body without the closing brace, and false when the block is
// unterminated.
func scanBody(text string) (string, bool) {
	depth := 1
	inString := false
	var quote byte
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			if ch == '\n' {
				inString = false
			} else if ch == '\\' {
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[:i], true
			}
		}
	}
	return "", false
}
