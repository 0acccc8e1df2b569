// Package index extracts repository links from the markdown document that
// lists open-source Flutter apps.
package index

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Link is a repository link extracted from the index document.
type Link struct {
	Title string // link text
	Dest  string // link destination URL
}

// ExtractLinks parses the markdown index document and returns the repository
// links listed under its sections.
//
// Document layout: top-level headings name sections. The list under the
// "Contents" heading declares every section title; a list under any other
// heading contributes one repository link per item. A list under a heading
// that was not declared in Contents is an error.
func ExtractLinks(source []byte) ([]Link, error) {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	var links []Link
	var currentSection string
	declared := make(map[string]bool)

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			currentSection = nodeText(n, source)

		case *ast.List:
			if currentSection == "Contents" {
				for li := n.FirstChild(); li != nil; li = li.NextSibling() {
					link := firstLink(li)
					if link == nil {
						return nil, fmt.Errorf("contents entry without a link")
					}
					declared[strings.ToLower(nodeText(link, source))] = true
				}
				continue
			}
			if currentSection == "" {
				continue
			}
			if !declared[strings.ToLower(currentSection)] {
				return nil, fmt.Errorf("invalid section: %s", currentSection)
			}
			for li := n.FirstChild(); li != nil; li = li.NextSibling() {
				link := firstLink(li)
				if link == nil {
					return nil, fmt.Errorf("entry without a link under section %s", currentSection)
				}
				links = append(links, Link{
					Title: nodeText(link, source),
					Dest:  string(link.Destination),
				})
			}
		}
	}

	return links, nil
}

// firstLink returns the first link node under n, or nil.
func firstLink(n ast.Node) *ast.Link {
	var found *ast.Link
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if link, ok := c.(*ast.Link); ok {
				found = link
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return found
}

// nodeText concatenates the text content under n.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
