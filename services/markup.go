package services

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never take an end tag.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true, atom.Embed: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Link: true, atom.Meta: true,
	atom.Param: true, atom.Source: true, atom.Track: true, atom.Wbr: true,
}

// PlainText flattens notes pasted as HTML to their text content. A note is treated as
// HTML only when every '<' in it opens a known, balanced element, a comment or a doctype;
// anything else (including "<PEPE>" or "x<y") is returned byte for byte.
func PlainText(note string) string {
	if !strings.Contains(note, "<") {
		return note
	}
	if text, ok := flattenMarkup(note); ok {
		return text
	}
	return note
}

func flattenMarkup(note string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(note))

	var (
		b    strings.Builder
		open []atom.Atom
		tags int
		skip int
	)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return "", false
			}
			// tags must account for every '<' the caller wrote
			if tags == 0 || len(open) != 0 || tags != strings.Count(note, "<") {
				return "", false
			}
			return b.String(), true

		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == 0 {
				return "", false
			}
			tags++
			if a == atom.Br {
				b.WriteByte('\n')
			}
			if tt == html.StartTagToken && !voidElements[a] {
				open = append(open, a)
				if isHiddenElement(a) {
					skip++
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == 0 || len(open) == 0 || open[len(open)-1] != a {
				return "", false
			}
			open = open[:len(open)-1]
			tags++
			if isHiddenElement(a) {
				skip--
			}

		case html.CommentToken, html.DoctypeToken:
			tags++
		}
	}
}

func isHiddenElement(a atom.Atom) bool {
	return a == atom.Script || a == atom.Style || a == atom.Noscript
}
