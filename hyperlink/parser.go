package hyperlink

import "strings"

const (
	// Each separator is a token of its own.
	separators = " \t\r\n,;"

	// Characters a hyperlink may not end with. Some are legal at the end of
	// a URI but far more often belong to the surrounding sentence.
	// '#' and '/' are deliberately absent.
	notAllowedAtEnd = ".:%<>|\\[]{}()!?\"'`@&~^"
)

// Chunk is a piece of parsed text.
type Chunk struct {
	Text        string
	IsHyperlink bool
	IsNewLine   bool
}

// Parser splits text into plain-text, newline and hyperlink chunks.
type Parser struct {
	validator *Validator
}

// NewParser returns a Parser that recognizes links with validator.
func NewParser(validator *Validator) *Parser {
	return &Parser{validator: validator}
}

// Parse splits text into chunks. Concatenating the Text of every chunk gives
// back the input. Adjacent plain-text tokens are merged into one chunk;
// hyperlinks and "\n" always get a chunk of their own. Empty input yields an
// empty, non-nil slice.
func (p *Parser) Parse(text string) []Chunk {
	chunks := make([]Chunk, 0)

	for left := 0; left < len(text); {
		token, next := nextToken(text, left)
		left = next

		isHyperlink := p.validator.IsValid(token)
		isNewLine := token == "\n"

		if n := len(chunks); n > 0 && !isHyperlink && !isNewLine && !chunks[n-1].IsHyperlink && !chunks[n-1].IsNewLine {
			chunks[n-1].Text += token

			continue
		}

		chunks = append(chunks, Chunk{
			Text:        token,
			IsHyperlink: isHyperlink,
			IsNewLine:   isNewLine,
		})
	}

	return chunks
}

// nextToken returns the token starting at left and the offset just past it.
// A token is one of: a run of characters not allowed at the end of a URI, a
// single separator, or a word with its disallowed tail cut off.
func nextToken(text string, left int) (string, int) {
	rest := text[left:]

	if n := len(rest) - len(strings.TrimLeft(rest, notAllowedAtEnd)); n > 0 {
		return rest[:n], left + n
	}

	if strings.IndexByte(separators, rest[0]) >= 0 {
		return rest[:1], left + 1
	}

	word := rest
	if i := strings.IndexAny(rest, separators); i >= 0 {
		word = rest[:i]
	}

	word = strings.TrimRight(word, notAllowedAtEnd)

	return word, left + len(word)
}
