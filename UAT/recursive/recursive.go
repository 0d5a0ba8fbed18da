// Package recursive holds interfaces whose members return other interfaces.
package recursive

// Parser splits text into fields.
type Parser interface {
	Parse(text string) []string
}

// ParserFactory makes parsers for a separator.
type ParserFactory interface {
	Create(separator rune) Parser
}

// Fields parses each line with a parser made for separator.
func Fields(factory ParserFactory, separator rune, lines ...string) [][]string {
	parser := factory.Create(separator)
	fields := make([][]string, 0, len(lines))

	for _, line := range lines {
		fields = append(fields, parser.Parse(line))
	}

	return fields
}
