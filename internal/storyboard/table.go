package storyboard

import (
	"regexp"
	"strings"
)

// legacyHeaderLines is how many lines are dropped when the table has no separator row.
const legacyHeaderLines = 4

// descriptionCell is the 0-based index, after splitting on "|", of the scene content column.
// The leading pipe produces an empty cell 0.
const descriptionCell = 3

var separatorCell = regexp.MustCompile(`^:?-{3,}:?$`)

// DataLines returns the table rows that follow the header of a generated storyboard.
// The header ends at the first markdown separator row; without one the first four
// lines are treated as header. Blank lines are dropped.
func DataLines(text string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isSeparatorRow(line) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		start = legacyHeaderLines
	}
	if start > len(lines) {
		return nil
	}

	var rows []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// SceneDescription returns the scene content cell of a row. ok is false when the
// row has 3 or fewer pipe-delimited cells or the cell is blank.
func SceneDescription(line string) (description string, ok bool) {
	cells := strings.Split(line, "|")
	if len(cells) <= descriptionCell {
		return "", false
	}
	description = strings.TrimSpace(cells[descriptionCell])
	return description, description != ""
}

func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return false
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	cells := strings.Split(trimmed, "|")
	for _, cell := range cells {
		if !separatorCell.MatchString(strings.TrimSpace(cell)) {
			return false
		}
	}
	return len(cells) > 0
}
