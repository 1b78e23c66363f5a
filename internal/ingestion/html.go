package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlSpaceRe = regexp.MustCompile(`\s+`)

const blockSelectors = "p, div, li, h1, h2, h3, h4, h5, h6, tr, dt, dd, section, article, header, footer, blockquote"

// ExtractHTMLText renders an HTML resume as lines: block elements end a line,
// list items get a bullet prefix and source formatting whitespace is collapsed.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, nav").Remove()

	// Collapse whitespace inside text nodes before structural newlines go in.
	doc.Find("*").Not("pre").Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			s.Nodes[0].Data = htmlSpaceRe.ReplaceAllString(s.Nodes[0].Data, " ")
		}
	})

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("• ")
	})
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return root.Text(), nil
}
