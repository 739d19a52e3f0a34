// Package render formats API read models for terminal display.
package render

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

// Pre-compiled regexes for better performance and to avoid ReDoS with runtime compilation
var (
	excessiveLinesRe = regexp.MustCompile(`\n{4,}`)
	htmlTagRe        = regexp.MustCompile(`(?s)<[a-zA-Z/!][^>]*>`)
)

// Converter converts rich-text HTML fields (internship descriptions,
// notification bodies) to markdown for terminal output.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a new HTML to markdown converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)

	// Add plugins for better markdown output
	converter.Use(plugin.GitHubFlavored())

	return &Converter{
		converter: converter,
	}
}

// Markdown converts content to markdown. Plain text passes through unchanged
// so entries written from the CLI are never mangled.
func (c *Converter) Markdown(content string) (string, error) {
	if !looksLikeHTML(content) {
		return strings.TrimSpace(content), nil
	}

	markdown, err := c.converter.ConvertString(content)
	if err != nil {
		return "", err
	}

	return cleanMarkdown(markdown), nil
}

// Excerpt returns a single-line plain-text preview of content, truncated to
// maxLen runes. HTML is reduced to its text.
func Excerpt(content string, maxLen int) string {
	text := content
	if looksLikeHTML(content) {
		text = extractText(content)
	}

	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if maxLen > 0 && len(runes) > maxLen {
		text = strings.TrimSpace(string(runes[:maxLen-1])) + "…"
	}
	return text
}

// looksLikeHTML reports whether content contains any markup worth converting.
func looksLikeHTML(content string) bool {
	return htmlTagRe.MatchString(content)
}

// extractText collects the text nodes of an HTML fragment.
func extractText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// Fall back to stripping tags lexically
		return htmlTagRe.ReplaceAllString(content, " ")
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String()
}

// cleanMarkdown cleans up converted markdown.
func cleanMarkdown(content string) string {
	// Remove excessive blank lines (more than 2) using pre-compiled regex
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")

	// Remove trailing whitespace from lines
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	return strings.TrimSpace(content)
}
