package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var reSpace = regexp.MustCompile(`\s+`)

// matchFirst tries patterns from most-specific to most-general and returns
// the first capture group of the first one that matches, or "".
func matchFirst(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// parseAmount parses a money or plain numeric string, tolerating thousands
// separators. Nil when the string is empty or malformed.
func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return nil
	}
	return &v
}

var dateFormats = []string{
	"January 2 2006",
	"Jan 2 2006",
	"01/02/2006",
	"2006-01-02",
}

// parseDate normalizes long-form and slash dates ("March 4, 2024",
// "MAR 04 2024", "03/04/2024") to a date value. Nil when unparseable.
func parseDate(s string) *time.Time {
	s = normalizeSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	// Title-case month abbreviations so "MAR 04 2024" parses.
	s = titleCaseMonth(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

var dateTimeFormats = []string{
	"January 2 2006 3:04 PM",
	"Jan 2 2006 3:04 PM",
	"01/02/2006 3:04 PM",
}

// parseDateTime combines a date string and a clock string ("2:00 pm").
func parseDateTime(dateStr, timeStr string) *time.Time {
	dateStr = normalizeSpace(strings.ReplaceAll(dateStr, ",", ""))
	timeStr = strings.ToUpper(normalizeSpace(timeStr))
	// Tolerate "2:00PM".
	timeStr = strings.TrimSpace(strings.ReplaceAll(timeStr, "PM", " PM"))
	timeStr = strings.TrimSpace(strings.ReplaceAll(timeStr, "AM", " AM"))
	timeStr = normalizeSpace(timeStr)
	if dateStr == "" || timeStr == "" {
		return nil
	}
	combined := titleCaseMonth(dateStr) + " " + timeStr
	for _, layout := range dateTimeFormats {
		if t, err := time.Parse(layout, combined); err == nil {
			return &t
		}
	}
	return nil
}

var rePercentValue = regexp.MustCompile(`([-+]?\d+(?:\.\d+)?)\s*%`)

// parsePercent extracts a percentage value from a line, if present.
func parsePercent(line string) *float64 {
	m := rePercentValue.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

// normalizeSpace collapses runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

func titleCaseMonth(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	m := strings.ToLower(fields[0])
	fields[0] = strings.ToUpper(m[:1]) + m[1:]
	return strings.Join(fields, " ")
}

var contractNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Contract No\.?\s*:?\s*(DA\d{5})`),
	regexp.MustCompile(`(?i)(DA\d{5})`),
	regexp.MustCompile(`\b(\d{8})\b`),
}

// extractContractNumber searches the text, then the filename, for a contract
// number (DA##### or a bare 8-digit identifier). Uppercased; "" when absent.
func extractContractNumber(text, filename string) string {
	if n := matchFirst(text, contractNumberPatterns); n != "" {
		return strings.ToUpper(n)
	}
	if n := matchFirst(filename, contractNumberPatterns); n != "" {
		return strings.ToUpper(n)
	}
	return ""
}

// cleanDescription flattens a multi-line description and caps its length.
func cleanDescription(s string) string {
	s = normalizeSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}
