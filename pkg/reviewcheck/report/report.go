package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

// FileRow holds the extracted values and image checks for one file.
type FileRow struct {
	Filename string
	Values   []interface{}
	Images   []models.ImageStatus
}

// Section groups the rows collected under one file type rule.
type Section struct {
	Rule *models.FileTypeRule
	Rows []FileRow
}

// Build renders the full report document: one extraction table per file
// type rule, the verdict table, and the closing summary counts.
func Build(sections []*Section, verdicts []models.Verdict, sum models.Summary) string {
	var b strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&b, "[%s]\n", sec.Rule.Name)
		b.WriteString(sec.table().Render())
		b.WriteString("\n")
	}

	b.WriteString("[validation]\n")
	b.WriteString(verdictTable(verdicts).Render())
	b.WriteString("\n")

	b.WriteString("[summary]\n")
	b.WriteString(summaryLines(sum))
	return b.String()
}

// WriteFile saves report content as UTF-8 text ending in a newline.
func WriteFile(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (s *Section) table() *Table {
	header := make([]string, 0, 1+len(s.Rule.TargetCells)+len(s.Rule.ImageCheckCells))
	header = append(header, "Filename")
	for i, cell := range s.Rule.TargetCells {
		if i < len(s.Rule.CellLabels) && s.Rule.CellLabels[i] != "" {
			header = append(header, s.Rule.CellLabels[i])
		} else {
			header = append(header, cell)
		}
	}
	for _, cell := range s.Rule.ImageCheckCells {
		header = append(header, cell+"(img)")
	}

	t := &Table{Header: header}
	for _, row := range s.Rows {
		cols := make([]string, 0, len(header))
		cols = append(cols, row.Filename)
		for _, v := range row.Values {
			cols = append(cols, models.FormatValue(v))
		}
		for _, status := range row.Images {
			cols = append(cols, imageMark(status))
		}
		t.Rows = append(t.Rows, cols)
	}
	return t
}

// imageMark maps an image check result to its report marker.
func imageMark(status models.ImageStatus) string {
	switch status {
	case models.ImagePresent:
		return "○"
	case models.ImageAbsent:
		return "×"
	default:
		return "-"
	}
}

func verdictTable(verdicts []models.Verdict) *Table {
	t := &Table{Header: []string{"Project", "Status", "Warnings"}}
	for _, v := range verdicts {
		t.Rows = append(t.Rows, []string{v.ProjectKey, v.Status, strings.Join(v.Warnings, "; ")})
	}
	return t
}

func summaryLines(sum models.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "total projects: %d\n", sum.Total)
	fmt.Fprintf(&b, "complete pairs: %d\n", sum.Complete)
	fmt.Fprintf(&b, "checklist only: %d\n", sum.ChecklistOnly)
	fmt.Fprintf(&b, "record only: %d\n", sum.RecordOnly)
	fmt.Fprintf(&b, "stamp missing: %d\n", sum.StampMissing)
	return b.String()
}
