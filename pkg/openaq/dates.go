package openaq

import (
	"fmt"
	"strings"
	"time"
)

// apiTimeFormat is the timestamp format the OpenAQ API expects in
// datetime_from/datetime_to query parameters.
const apiTimeFormat = "2006-01-02T15:04:05Z"

// dateLayouts are tried in order. Slash dates are month-first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2006/01/02",
}

// ParseDate converts common date inputs to the API timestamp format.
// Strings already in the API format pass through unchanged, and an
// empty input stays empty (meaning "not set"). Inputs carrying a UTC
// offset are converted to UTC first.
func ParseDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	if strings.HasSuffix(input, "Z") {
		if _, err := time.Parse(apiTimeFormat, input); err == nil {
			return input, nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.UTC().Format(apiTimeFormat), nil
		}
	}

	return "", fmt.Errorf("could not parse date %q", input)
}

// FormatDate renders a time in the API timestamp format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(apiTimeFormat)
}
