package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread"
)

// ExtractStructuredData returns every JSON-LD object embedded in rawHTML in
// document order. Blocks that are not valid JSON are skipped. A block
// holding a top-level array contributes each of its objects.
func ExtractStructuredData(rawHTML string) []mread.StructuredObject {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return nil
	}
	return structuredData(doc)
}

func structuredData(doc *goquery.Document) []mread.StructuredObject {
	var objects []mread.StructuredObject
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		objects = append(objects, decodeStructuredData(s.Text())...)
	})
	return objects
}

func decodeStructuredData(raw string) []mread.StructuredObject {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil
		}
		var objects []mread.StructuredObject
		for _, item := range items {
			var obj mread.StructuredObject
			if err := json.Unmarshal(item, &obj); err != nil {
				continue
			}
			objects = append(objects, obj)
		}
		return objects
	}

	var obj mread.StructuredObject
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil
	}
	return []mread.StructuredObject{obj}
}
