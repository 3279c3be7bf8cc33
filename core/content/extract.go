// ABOUTME: Field extraction, body cleaning and word counting over generated text
// ABOUTME: Extraction and cleaning share the same label patterns so they cannot drift apart

package content

import (
	"regexp"
	"strings"
	"unicode"

	"seo-content-api/core/domain"
)

// Label patterns match a whole line. Leading markdown decoration (*, _, >) and an
// optional "Page"/"SEO" qualifier are tolerated; the separator is ':' or '-'.
// On a '#' heading line a dash only separates when spaced ("## Title - x"), so a
// heading such as "## Title-Case Tips" stays in the body.
// The meta description pattern needs both words, so a bare "title" never matches it.
const (
	TitleLabelPattern = `(?i)^(?:[\s*_>]*(?:page\s+|seo\s+)?title[*_]*\s*[:\-]` +
		`|[\s#*_>]*(?:page\s+|seo\s+)?title[*_]*(?:\s*:|\s+-\s))\s*(.*)$`
	MetaDescriptionLabelPattern = `(?i)^(?:[\s*_>]*(?:seo\s+)?meta\s+description[*_]*\s*[:\-]` +
		`|[\s#*_>]*(?:seo\s+)?meta\s+description[*_]*(?:\s*:|\s+-\s))\s*(.*)$`
)

var (
	titleLabel           = regexp.MustCompile(TitleLabelPattern)
	metaDescriptionLabel = regexp.MustCompile(MetaDescriptionLabelPattern)

	// letters, digits and underscore, like \w in unicode mode
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

	newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Parse derives the structured fields from raw provider text
func Parse(raw string) domain.ParsedContent {
	title, meta := ExtractFields(raw)
	body := CleanBody(raw)
	return domain.ParsedContent{
		PageTitle:       title,
		MetaDescription: meta,
		BodyText:        body,
		WordCount:       CountWords(body),
	}
}

// ExtractFields returns the first title and the first meta description found, scanning
// line by line. The title pattern is tried first on each line. A label line with an
// empty value is skipped. Misses resolve to domain.NotFoundPlaceholder.
func ExtractFields(raw string) (title, metaDescription string) {
	title, metaDescription = domain.NotFoundPlaceholder, domain.NotFoundPlaceholder
	foundTitle, foundMeta := false, false

	for _, line := range splitLines(raw) {
		if foundTitle && foundMeta {
			break
		}
		if m := titleLabel.FindStringSubmatch(line); m != nil {
			if v := labelValue(m[1]); !foundTitle && v != "" {
				title, foundTitle = v, true
			}
			continue
		}
		if m := metaDescriptionLabel.FindStringSubmatch(line); m != nil {
			if v := labelValue(m[1]); !foundMeta && v != "" {
				metaDescription, foundMeta = v, true
			}
		}
	}
	return title, metaDescription
}

// CleanBody removes every title and meta description line and trims the result.
// Applying it twice gives the same text.
func CleanBody(raw string) string {
	lines := splitLines(raw)
	kept := lines[:0]
	for _, line := range lines {
		if IsLabelLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// IsLabelLine reports whether line is a title or meta description line
func IsLabelLine(line string) bool {
	return titleLabel.MatchString(line) || metaDescriptionLabel.MatchString(line)
}

// CountWords counts maximal runs of word characters
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

func labelValue(v string) string {
	return strings.TrimFunc(v, func(r rune) bool {
		return unicode.IsSpace(r) || r == '*'
	})
}

func splitLines(text string) []string {
	return strings.Split(newlines.Replace(text), "\n")
}
