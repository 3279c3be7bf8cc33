package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-content-api/core/domain"
)

func TestOutline_DocumentOrder(t *testing.T) {
	doc := RenderHTML("Intro text\n## Dresses\nBody\n### Maxi & Midi\n#### Care\n## Shoes")

	headings, err := Outline(doc)

	require.NoError(t, err)
	assert.Equal(t, []domain.Heading{
		{Level: 2, Text: "Dresses"},
		{Level: 3, Text: "Maxi & Midi"},
		{Level: 4, Text: "Care"},
		{Level: 2, Text: "Shoes"},
	}, headings)
}

func TestOutline_NoHeadings(t *testing.T) {
	headings, err := Outline(RenderHTML("Just a paragraph.\n##### not a heading"))

	require.NoError(t, err)
	assert.NotNil(t, headings)
	assert.Empty(t, headings)
}
