package mread

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ValueKind identifies the shape of a structured-data field.
type ValueKind int

// Structured-data field shapes.
const (
	ValueMissing ValueKind = iota
	ValueScalar
	ValueObject
	ValueList
)

// Value is a structured-data field that publishers emit in several shapes:
// a scalar, an object with name/url, or a list of either.
type Value struct {
	Kind ValueKind

	// Text is set for ValueScalar. Numbers and booleans keep their JSON text.
	Text string

	// ObjectName and ObjectURL are set for ValueObject.
	ObjectName string
	ObjectURL  string

	// Items is set for ValueList.
	Items []Value
}

// UnmarshalJSON decodes any JSON value into the matching Value shape.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*v = Value{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		v.Kind = ValueObject
		v.ObjectName = scalarText(obj["name"])
		v.ObjectURL = scalarText(obj["url"])
	case '[':
		var items []Value
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		v.Kind = ValueList
		v.Items = items
	default:
		v.Kind = ValueScalar
		v.Text = scalarText(b)
	}
	return nil
}

// String returns the text of a scalar value, or "" for any other shape.
func (v Value) String() string {
	if v.Kind == ValueScalar {
		return v.Text
	}
	return ""
}

// AsName narrows v to a display name: a scalar's text, an object's name,
// or the narrowed first element of a list.
func (v Value) AsName() string {
	switch v.Kind {
	case ValueScalar:
		return v.Text
	case ValueObject:
		return v.ObjectName
	case ValueList:
		if len(v.Items) > 0 {
			return v.Items[0].AsName()
		}
	}
	return ""
}

// AsURL narrows v to a URL: a scalar's text, an object's url, or the
// narrowed first element of a list.
func (v Value) AsURL() string {
	switch v.Kind {
	case ValueScalar:
		return v.Text
	case ValueObject:
		return v.ObjectURL
	case ValueList:
		if len(v.Items) > 0 {
			return v.Items[0].AsURL()
		}
	}
	return ""
}

// scalarText returns the text of a JSON string, number or boolean.
func scalarText(b json.RawMessage) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ""
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	}
	return string(b)
}

// StructuredObject is one JSON-LD object embedded in a page.
type StructuredObject struct {
	// Types holds @type, which may be published as a string or a list.
	Types []string

	Headline      string
	Description   string
	ArticleBody   string
	DatePublished string
	DateCreated   string
	Author        Value
	Image         Value
}

// UnmarshalJSON decodes a JSON-LD object, tolerating shape variance in
// every field. It fails only when b is not a JSON object.
func (o *StructuredObject) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type          Value `json:"@type"`
		Headline      Value `json:"headline"`
		Description   Value `json:"description"`
		ArticleBody   Value `json:"articleBody"`
		DatePublished Value `json:"datePublished"`
		DateCreated   Value `json:"dateCreated"`
		Author        Value `json:"author"`
		Image         Value `json:"image"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*o = StructuredObject{
		Headline:      raw.Headline.String(),
		Description:   raw.Description.String(),
		ArticleBody:   raw.ArticleBody.String(),
		DatePublished: raw.DatePublished.String(),
		DateCreated:   raw.DateCreated.String(),
		Author:        raw.Author,
		Image:         raw.Image,
	}
	switch raw.Type.Kind {
	case ValueScalar:
		o.Types = []string{raw.Type.Text}
	case ValueList:
		for _, item := range raw.Type.Items {
			if s := item.String(); s != "" {
				o.Types = append(o.Types, s)
			}
		}
	}
	return nil
}

// IsArticle reports whether any declared type is Article, BlogPosting, or
// contains "article" in any case.
func (o *StructuredObject) IsArticle() bool {
	for _, t := range o.Types {
		if t == "Article" || t == "BlogPosting" || strings.Contains(strings.ToLower(t), "article") {
			return true
		}
	}
	return false
}

// FindArticle returns the first object in document order that describes an
// article, or nil if none does.
func FindArticle(objects []StructuredObject) *StructuredObject {
	for i := range objects {
		if objects[i].IsArticle() {
			return &objects[i]
		}
	}
	return nil
}
