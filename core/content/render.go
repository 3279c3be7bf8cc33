// ABOUTME: Renders the markdown subset produced by the model (## to #### headings, paragraphs) as HTML
// ABOUTME: Works on the raw text, title and meta lines included; text content is HTML-escaped

package content

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"seo-content-api/core/domain"
)

const (
	documentOpen  = "<html><body>\n"
	documentClose = "\n</body></html>"
	lineBreak     = "<br>\n"
)

// exactly two to four '#' followed by a space; five or more is paragraph text
var headingLine = regexp.MustCompile(`^(#{2,4}) (.+)$`)

type paragraphState int

const (
	noParagraph paragraphState = iota
	inParagraph
)

// renderer walks the text once, buffering consecutive plain lines into a paragraph
type renderer struct {
	state     paragraphState
	paragraph []string
	elements  []string
}

// Render converts raw generated text into the downloadable HTML document
func Render(raw string) domain.HTMLDocument {
	return domain.NewHTMLDocument(RenderHTML(raw))
}

// RenderHTML converts raw generated text into a minimal HTML document string
func RenderHTML(raw string) string {
	r := &renderer{}
	for _, line := range splitLines(raw) {
		r.line(line)
	}
	r.flush()
	return documentOpen + strings.Join(r.elements, "\n") + documentClose
}

func (r *renderer) line(line string) {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		r.flush()
		return
	}

	if m := headingLine.FindStringSubmatch(stripped); m != nil {
		r.flush()
		tag := headingTag(len(m[1]))
		r.elements = append(r.elements, "<"+tag+">"+html.EscapeString(m[2])+"</"+tag+">")
		return
	}

	r.paragraph = append(r.paragraph, html.EscapeString(stripped))
	r.state = inParagraph
}

func (r *renderer) flush() {
	if r.state == noParagraph {
		return
	}
	r.elements = append(r.elements, "<p>"+strings.Join(r.paragraph, lineBreak)+"</p>")
	r.paragraph = r.paragraph[:0]
	r.state = noParagraph
}

func headingTag(hashes int) string {
	switch hashes {
	case 2:
		return "h2"
	case 3:
		return "h3"
	default:
		return "h4"
	}
}
