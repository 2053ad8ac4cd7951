package blogconf

import (
	"fmt"
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FooterText builds the plain copyright line.
func FooterText(year int, author string) string {
	return fmt.Sprintf("Content and design copyright © %d %s", year, author)
}

// FooterMarkup builds the copyright line with the author linked to href.
func FooterMarkup(year int, author, href string) string {
	return fmt.Sprintf(`Content and design copyright © %d <a href="%s">%s</a>`,
		year, html.EscapeString(href), html.EscapeString(author))
}

// footerInfo tokenizes a footer. text is the unescaped text content with the
// markup removed. balanced reports whether every element opened is closed in
// order and, when the footer carries markup, whether it ends on a closing
// tag. Void elements such as <br> need no closing tag.
func footerInfo(footer string) (text string, balanced bool) {
	z := xhtml.NewTokenizer(strings.NewReader(footer))
	var b strings.Builder
	var stack []string
	var last xhtml.TokenType
	sawMarkup := false
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if z.Err() != io.EOF || len(stack) != 0 {
				return b.String(), false
			}
			return b.String(), !sawMarkup || last == xhtml.EndTagToken
		case xhtml.StartTagToken:
			tok := z.Token()
			sawMarkup = true
			last = tt
			if !voidElements[tok.DataAtom] {
				stack = append(stack, tok.Data)
			}
		case xhtml.EndTagToken:
			tok := z.Token()
			if len(stack) == 0 || stack[len(stack)-1] != tok.Data {
				return b.String(), false
			}
			stack = stack[:len(stack)-1]
			last = tt
		case xhtml.SelfClosingTagToken:
			sawMarkup = true
			last = tt
		case xhtml.TextToken:
			data := z.Token().Data
			b.WriteString(data)
			if strings.TrimSpace(data) != "" {
				last = tt
			}
		}
	}
}

func footerBalanced(footer string) bool {
	_, ok := footerInfo(footer)
	return ok
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}
