package resource

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// SnakeToCamel converts a snake_case boundary name to the UpperCamel naming
// convention providers register under ("system_info" -> "SystemInfo").
func SnakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(titleCaser.String(part))
	}
	return b.String()
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// CamelToSnake converts an UpperCamel provider name back to the snake_case
// name exposed at the boundary ("SystemInfo" -> "system_info").
func CamelToSnake(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "${1}_${2}"))
}
