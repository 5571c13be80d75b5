// ABOUTME: Renders catalog listings and markdown topic documents as styled terminal text.
// ABOUTME: Markdown is parsed with goldmark and walked block by block; styling is lipgloss.

package apidoc

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	subheadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	codeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	methodStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Width(7)
	pathStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	summaryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderCatalog formats the catalog's endpoint groups as a terminal listing.
func RenderCatalog(cat *Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headingStyle.Render("API endpoints ("+cat.BaseURL+")"))
	for _, g := range cat.Groups {
		b.WriteString("\n")
		b.WriteString(RenderGroup(&g))
	}
	return b.String()
}

// RenderGroup formats one endpoint group.
func RenderGroup(g *Group) string {
	var b strings.Builder
	b.WriteString(subheadingStyle.Render(g.Name))
	if g.Description != "" {
		fmt.Fprintf(&b, "  %s", summaryStyle.Render(g.Description))
	}
	b.WriteString("\n")
	for _, e := range g.Endpoints {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			methodStyle.Render(e.Method),
			pathStyle.Render(e.Path),
			summaryStyle.Render(e.Summary))
	}
	return b.String()
}

// RenderMarkdown converts a markdown topic document into styled terminal
// text. Only the block structure the topic documents use is handled:
// headings, paragraphs, fenced code blocks, and lists.
func RenderMarkdown(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var b strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			style := subheadingStyle
			if node.Level == 1 {
				style = headingStyle
			}
			b.WriteString(style.Render(inlineText(node, source)))
			b.WriteString("\n\n")
		case *ast.Paragraph:
			b.WriteString(inlineText(node, source))
			b.WriteString("\n\n")
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			for i := 0; i < n.Lines().Len(); i++ {
				seg := n.Lines().At(i)
				line := strings.TrimRight(string(seg.Value(source)), "\n")
				b.WriteString("    " + codeStyle.Render(line) + "\n")
			}
			b.WriteString("\n")
		case *ast.List:
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				b.WriteString("  • " + inlineText(item, source) + "\n")
			}
			b.WriteString("\n")
		case *ast.ThematicBreak:
			b.WriteString(strings.Repeat("─", 40) + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// inlineText collects the plain text of a block node's inline children.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.CodeSpan:
			// Rendered via its Text children; nothing extra needed.
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
