package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seo-content-api/core/domain"
)

const sampleOutput = `Title: Summer Sale Guide
Meta description: Shop the summer sale for tees, shorts and sandals.

## Summer Essentials
Light fabrics and bright colours.

Title: a second title line
More text here.`

func TestExtractFields_NoLabels(t *testing.T) {
	title, meta := ExtractFields("Just a body.\n\nWith two paragraphs.")

	assert.Equal(t, domain.NotFoundPlaceholder, title)
	assert.Equal(t, domain.NotFoundPlaceholder, meta)
}

func TestExtractFields_FirstMatchWins(t *testing.T) {
	title, meta := ExtractFields(sampleOutput)

	assert.Equal(t, "Summer Sale Guide", title)
	assert.Equal(t, "Shop the summer sale for tees, shorts and sandals.", meta)
}

func TestExtractFields_Variants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
		meta  string
	}{
		{"uppercase label", "TITLE: Big Title", "Big Title", domain.NotFoundPlaceholder},
		{"dash separator", "title - Dash Title\nmeta description- Dash meta", "Dash Title", "Dash meta"},
		{"surrounding whitespace", "  Title:    Padded   ", "Padded", domain.NotFoundPlaceholder},
		{"bold label", "**Title:** Bold Title\n**Meta Description:** Bold meta", "Bold Title", "Bold meta"},
		{"bold label outside colon", "**Title**: Outside", "Outside", domain.NotFoundPlaceholder},
		{"heading label", "# Page Title: Heading Title", "Heading Title", domain.NotFoundPlaceholder},
		{"meta before title", "Meta description: first\nTitle: second", "second", "first"},
		{"empty value skipped", "Title:\nTitle: Real", "Real", domain.NotFoundPlaceholder},
		{"meta needs both words", "Meta: not a description\nDescription: nope", domain.NotFoundPlaceholder, domain.NotFoundPlaceholder},
		{"title word inside sentence", "The title: is not at line start", domain.NotFoundPlaceholder, domain.NotFoundPlaceholder},
		{"windows newlines", "Title: CRLF\r\nMeta description: works\r\n", "CRLF", "works"},
		{"unicode whitespace trimmed", "Title: \u00a0 Spaced \u00a0\nMeta description:\u2003Em\u2003", "Spaced", "Em"},
		{"heading label with spaced dash", "## Title - Dashed Heading", "Dashed Heading", domain.NotFoundPlaceholder},
		{"hyphenated heading is not a label", "## Title-Case Tips\nBody here.", domain.NotFoundPlaceholder, domain.NotFoundPlaceholder},
		{"hyphenated meta heading is not a label", "### Meta description-driven pages", domain.NotFoundPlaceholder, domain.NotFoundPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, meta := ExtractFields(tt.input)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.meta, meta)
		})
	}
}

func TestCleanBody_RemovesEveryLabelLine(t *testing.T) {
	body := CleanBody(sampleOutput)

	assert.NotContains(t, body, "Title:")
	assert.NotContains(t, body, "Meta description")
	assert.Contains(t, body, "## Summer Essentials")
	assert.Contains(t, body, "More text here.")
	assert.Equal(t, "## Summer Essentials", body[:len("## Summer Essentials")])
}

func TestParse_HyphenatedHeadingStaysInBody(t *testing.T) {
	parsed := Parse("Title: Real Title\n## Title-Case Tips\nBody here.")

	assert.Equal(t, "Real Title", parsed.PageTitle)
	assert.Equal(t, "## Title-Case Tips\nBody here.", parsed.BodyText)
	assert.Equal(t, 5, parsed.WordCount)
}

func TestCleanBody_Idempotent(t *testing.T) {
	inputs := []string{
		sampleOutput,
		"  \n\nTitle: x\n  body  \n",
		"no labels at all",
		"",
	}

	for _, in := range inputs {
		once := CleanBody(in)
		assert.Equal(t, once, CleanBody(once))
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Hello world! This is  a test.", 6},
		{"", 0},
		{"   \n\t ", 0},
		{"... !!! ---", 0},
		{"snake_case counts once", 3},
		{"v2 ships 2024", 3},
		{"café crème", 2},
		{"## Heading\nline one", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.text), "text %q", tt.text)
	}
}

func TestParse_WordCountUsesCleanedBody(t *testing.T) {
	raw := "Title: Four Words In Title\nMeta description: five words are in here\nOne two three."

	parsed := Parse(raw)

	assert.Equal(t, "Four Words In Title", parsed.PageTitle)
	assert.Equal(t, "five words are in here", parsed.MetaDescription)
	assert.Equal(t, "One two three.", parsed.BodyText)
	assert.Equal(t, 3, parsed.WordCount)
	assert.NotEqual(t, CountWords(raw), parsed.WordCount)
}
