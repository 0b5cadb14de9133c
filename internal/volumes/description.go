package volumes

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var brRe = regexp.MustCompile(`(?i)<br\s*/?>`)

// PlainDescription returns the description with HTML markup removed.
// The API returns descriptions with <p>, <br> and <b> tags.
func (v Volume) PlainDescription() string {
	raw := v.VolumeInfo.Description
	if raw == "" || !strings.Contains(raw, "<") {
		return strings.TrimSpace(raw)
	}

	raw = brRe.ReplaceAllString(raw, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n")
	}
	return strings.TrimSpace(doc.Text())
}
