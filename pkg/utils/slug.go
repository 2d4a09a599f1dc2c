package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	multiHyphen  = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// RecordURL builds the canonical URL for a record, e.g.
// RecordURL("https://erp.example.com", "Sales Invoice", "ACC-SINV-2026-00001")
// -> "https://erp.example.com/app/sales-invoice/ACC-SINV-2026-00001"
func RecordURL(baseURL, doctype, name string) string {
	return strings.TrimRight(baseURL, "/") + "/app/" + Slugify(doctype) + "/" + name
}
