// ABOUTME: Prompt builder turns a generation request into the text sent to the provider
// ABOUTME: Topic headings deepen from level 2 to level 4 and stay at level 4 afterwards

package prompt

import (
	"fmt"
	"strings"

	"seo-content-api/core/domain"
)

// MetaDescriptionLimit is the soft character target asked of the model.
// It is not enforced on the returned text.
const MetaDescriptionLimit = 160

// IntroMarker opens the structure block
const IntroMarker = "- Intro paragraph"

var headingMarkers = []string{"##", "###", "####"}

// HeadingMarker returns the markdown heading marker for the topic at position i
func HeadingMarker(i int) string {
	if i < len(headingMarkers) {
		return headingMarkers[i]
	}
	return headingMarkers[len(headingMarkers)-1]
}

// Build assembles the prompt for req. It never fails.
func Build(req domain.GenerationRequest) string {
	var b strings.Builder

	b.WriteString(req.Tone)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Write SEO content for the page category '%s' for the brand '%s'.\n", req.Category, req.Brand)
	fmt.Fprintf(&b, "Use primary keyword: '%s'. Secondary keywords: %s.\n", req.PrimaryKeyword, req.SecondaryKeywords)
	fmt.Fprintf(&b, "Minimum content length (excluding title/meta): %d words.\n", req.WordTarget)
	b.WriteString("Start with a page title on its own line as 'Title: <title>'.\n")
	fmt.Fprintf(&b, "Follow it with a meta description on its own line as 'Meta description: <description>' (around %d characters).\n", MetaDescriptionLimit)
	b.WriteString("No bullet lists, only paragraphs and headings.\n\n")

	if len(req.Topics) > 0 {
		b.WriteString("Structure:\n")
		b.WriteString(IntroMarker)
		b.WriteString("\n")
		for i, topic := range req.Topics {
			fmt.Fprintf(&b, "%s %s\n", HeadingMarker(i), topic)
		}
	}

	return b.String()
}
