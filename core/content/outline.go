package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seo-content-api/core/domain"
)

// Outline reads the section headings back out of a rendered document, in document order
func Outline(doc string) ([]domain.Heading, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}

	headings := []domain.Heading{}
	d.Find("h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, domain.Heading{
			Level: level,
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings, nil
}
