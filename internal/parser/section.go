package parser

import "strings"

// splitLines tokenizes raw extracted text into trimmed lines,
// normalizing the whitespace variants PDF extraction leaves behind.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, " ", " ")
		line = strings.ReplaceAll(line, "​", "")
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// sectionLines returns the lines inside the transaction table. Entry
// is the line after a header marker; exit is the first footer marker,
// both exclusive. Blank lines and skip-marker lines are discarded
// unconditionally. Unless the layout is SinglePage, scanning resumes
// at the next header after a footer, so multi-page statements keep
// their later pages.
func (l Layout) sectionLines(lines []string) []string {
	var bounded []string
	inside := false

	for _, line := range lines {
		if !inside {
			if l.isHeader(line) {
				inside = true
			}
			continue
		}
		if l.isFooter(line) {
			if l.SinglePage {
				return bounded
			}
			inside = false
			continue
		}
		if line == "" || l.isSkipped(line) {
			continue
		}
		bounded = append(bounded, line)
	}
	return bounded
}
