package domain

import (
	"mime"
	"strings"
)

// mediaTypeCategories maps bare, lower-cased media types to their intake
// category. Anything absent from this table is CategoryUnknown.
var mediaTypeCategories = map[string]MimeCategory{
	"application/pdf": CategoryPDF,

	"text/plain":    CategoryText,
	"text/markdown": CategoryText,
	"text/csv":      CategoryText,
	"text/rtf":      CategoryText,

	"application/msword": CategoryDocument,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": CategoryDocument,
	"application/vnd.oasis.opendocument.text":                                 CategoryDocument,
	"application/rtf": CategoryDocument,
}

// ClassifyMediaType returns the intake category for a declared media type.
// Parameters such as "; charset=utf-8" are ignored. Empty, malformed, or
// unlisted media types classify as CategoryUnknown.
func ClassifyMediaType(mediaType string) MimeCategory {
	base := BareMediaType(mediaType)
	if base == "" {
		return CategoryUnknown
	}
	if cat, ok := mediaTypeCategories[base]; ok {
		return cat
	}
	return CategoryUnknown
}

// BareMediaType strips parameters and normalises case. It returns "" when the
// input is not a parseable media type.
func BareMediaType(mediaType string) string {
	s := strings.TrimSpace(mediaType)
	if s == "" {
		return ""
	}
	base, _, err := mime.ParseMediaType(s)
	if err != nil {
		return ""
	}
	if !strings.Contains(base, "/") {
		return ""
	}
	return strings.ToLower(base)
}

// Label returns a short human label for the category.
func (c MimeCategory) Label() string {
	switch c {
	case CategoryPDF:
		return "PDF"
	case CategoryText:
		return "Text"
	case CategoryDocument:
		return "Document"
	default:
		return "Unknown"
	}
}
