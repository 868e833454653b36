package parser

import (
	"regexp"
	"strings"
)

// Response contains structured data extracted from an assistant reply.
type Response struct {
	// Raw is the original reply text.
	Raw string

	// Text is the reply with code blocks removed.
	Text string

	// CodeBlocks contains all fenced code blocks, in order.
	CodeBlocks []CodeBlock

	// FileRequests lists paths requested via the file-request command,
	// deduplicated, in order of first appearance.
	FileRequests []string
}

// CodeBlock represents a fenced code block.
type CodeBlock struct {
	// Language is the specifier after the opening fence, if any.
	Language string

	// Content is the code inside the block, excluding fences.
	Content string
}

// DefaultProgramName is the command name looked for in file requests.
const DefaultProgramName = "pilot"

// Parser extracts structured content from assistant replies.
type Parser struct {
	codeBlockRegex *regexp.Regexp
	requestRegex   *regexp.Regexp
}

// New creates a parser that recognizes file requests addressed to the
// given program name. An empty name uses DefaultProgramName.
func New(programName string) *Parser {
	if programName == "" {
		programName = DefaultProgramName
	}
	return &Parser{
		codeBlockRegex: regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```"),
		// A request line: the program name, the files subcommand, then
		// one or more paths. Optionally wrapped in backticks.
		requestRegex: regexp.MustCompile(`^\x60?` + regexp.QuoteMeta(programName) + `\s+files\s+(.+?)\x60?$`),
	}
}

// Parse extracts code blocks and file requests from a reply.
func (p *Parser) Parse(reply string) *Response {
	return &Response{
		Raw:          reply,
		Text:         p.removeCodeBlocks(reply),
		CodeBlocks:   p.extractCodeBlocks(reply),
		FileRequests: p.ExtractFileRequests(reply),
	}
}

// ExtractFileRequests returns every path requested via the file-request
// command anywhere in the reply, in order, without duplicates.
func (p *Parser) ExtractFileRequests(reply string) []string {
	seen := make(map[string]bool)
	var paths []string

	for _, line := range strings.Split(reply, "\n") {
		match := p.requestRegex.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		for _, path := range strings.Fields(match[1]) {
			path = strings.Trim(path, "`")
			if path == "" || seen[path] {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}
	return paths
}

// extractCodeBlocks finds all fenced code blocks in the reply.
func (p *Parser) extractCodeBlocks(text string) []CodeBlock {
	matches := p.codeBlockRegex.FindAllStringSubmatch(text, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for _, match := range matches {
		blocks = append(blocks, CodeBlock{
			Language: match[1],
			Content:  match[2],
		})
	}
	return blocks
}

// removeCodeBlocks strips fenced code blocks, leaving the prose.
func (p *Parser) removeCodeBlocks(text string) string {
	return strings.TrimSpace(p.codeBlockRegex.ReplaceAllString(text, ""))
}
