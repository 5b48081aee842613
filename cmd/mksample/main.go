// Command mksample generates a demo document tree for reviewcheck:
// checklist and record workbooks covering every verdict the tool can
// produce, plus a matching config.ini.
// Usage: go run ./cmd/mksample -d sample
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var sampleDir string

func main() {
	rootCmd := &cobra.Command{
		Use:   "mksample",
		Short: "Generate sample review documents and a config file",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	rootCmd.Flags().StringVarP(&sampleDir, "dir", "d", "sample", "Directory to generate into")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type samplePair struct {
	project      string
	date         string
	approvalDate string
	assignee     string
	reviewer     string
	checklist    string // relative file name, empty = not generated
	record       string
	stamped      bool
}

var samplePairs = []samplePair{
	{project: "プロジェクトA", date: "2025-01-15", approvalDate: "2025-01-15",
		assignee: "田中", reviewer: "田中",
		checklist: "project_a_review_checklist.xlsx",
		record:    "project_a_review_record.xlsx", stamped: true},
	// Nested directory, picked up by the recursive search.
	{project: "プロジェクトB", date: "2025-01-20", approvalDate: "2025-01-20",
		assignee: "佐藤", reviewer: "佐藤",
		checklist: filepath.Join("project_b", "review_checklist_b.xlsx"),
		record:    filepath.Join("project_b", "review_record_b.xlsx"), stamped: true},
	// Approval date disagrees with the checklist.
	{project: "プロジェクトC", date: "2025-02-01", approvalDate: "2025-02-10",
		assignee: "鈴木", reviewer: "鈴木",
		checklist: "project_c_review_checklist.xlsx",
		record:    "project_c_review_record.xlsx", stamped: true},
	// Record was never stamped.
	{project: "プロジェクトD", date: "2025-02-15", approvalDate: "2025-02-15",
		assignee: "高橋", reviewer: "高橋",
		checklist: "project_d_review_checklist.xlsx",
		record:    "project_d_review_record.xlsx", stamped: false},
	// No record yet.
	{project: "プロジェクトE", date: "2025-03-01", assignee: "伊藤",
		checklist: "project_e_review_checklist.xlsx"},
	// Record without its checklist.
	{project: "プロジェクトF", approvalDate: "2025-03-15", reviewer: "渡辺",
		record: "project_f_review_record.xlsx", stamped: true},
}

const sampleConfig = `[SETTINGS]
target_dir = input
search_keyword = review
output_filename = check_result.txt

[FILE_TYPE_1]
name = review checklist
role = checklist
file_pattern = *review_checklist*
target_sheet = Sheet1
target_cells = E4, E5, E6, N6
cell_labels = project name, date, assignee, approver

[FILE_TYPE_2]
name = review record
role = record
file_pattern = *review_record*
target_cells = AE2, AE7, AE8
cell_labels = project name, approval date, reviewer
image_check_cells = BY3
`

func run(cmd *cobra.Command, args []string) error {
	inputDir := filepath.Join(sampleDir, "input")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", inputDir, err)
	}

	stamp, err := stampPNG()
	if err != nil {
		return fmt.Errorf("encode stamp: %w", err)
	}

	for _, p := range samplePairs {
		if p.checklist != "" {
			path := filepath.Join(inputDir, p.checklist)
			if err := writeChecklist(path, p); err != nil {
				return fmt.Errorf("write checklist %s: %w", path, err)
			}
			log.Printf("wrote %s", path)
		}
		if p.record != "" {
			path := filepath.Join(inputDir, p.record)
			if err := writeRecord(path, p, stamp); err != nil {
				return fmt.Errorf("write record %s: %w", path, err)
			}
			log.Printf("wrote %s", path)
		}
	}

	// No "review" in the name, so the search keyword filters it out.
	decoy := filepath.Join(inputDir, "other_document.xlsx")
	if err := writeDecoy(decoy); err != nil {
		return fmt.Errorf("write %s: %w", decoy, err)
	}
	log.Printf("wrote %s", decoy)

	configPath := filepath.Join(sampleDir, "config.ini")
	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}
	log.Printf("wrote %s", configPath)

	log.Printf("done: run reviewcheck -i %s", configPath)
	return nil
}

func writeChecklist(path string, p samplePair) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B2", "レビューチェックリスト")
	f.SetCellValue("Sheet1", "A4", "プロジェクト名:")
	f.SetCellValue("Sheet1", "E4", p.project)
	f.SetCellValue("Sheet1", "A5", "実施日:")
	f.SetCellValue("Sheet1", "E5", p.date)
	f.SetCellValue("Sheet1", "A6", "担当者:")
	f.SetCellValue("Sheet1", "E6", p.assignee)
	f.SetCellValue("Sheet1", "L6", "承認者:")
	f.SetCellValue("Sheet1", "N6", p.assignee)
	f.SetCellValue("Sheet1", "A10", "チェック項目")
	f.SetCellValue("Sheet1", "A11", "設計書の版数は最新か")
	f.SetCellValue("Sheet1", "M11", "OK")
	f.SetCellValue("Sheet1", "A12", "指摘事項は全て解決済みか")
	f.SetCellValue("Sheet1", "M12", "OK")

	return f.SaveAs(path)
}

func writeRecord(path string, p samplePair, stamp []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B2", "レビュー記録表")
	f.SetCellValue("Sheet1", "B5", "指摘事項一覧")
	f.SetCellValue("Sheet1", "AE2", p.project)
	f.SetCellValue("Sheet1", "AE7", "approval date: "+p.approvalDate)
	f.SetCellValue("Sheet1", "AE8", "reviewer: "+p.reviewer)

	if p.stamped {
		err := f.AddPictureFromBytes("Sheet1", "BY3", &excelize.Picture{
			Extension: ".png",
			File:      stamp,
			Format:    &excelize.GraphicOptions{},
		})
		if err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeDecoy(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "会議メモ")
	f.SetCellValue("Sheet1", "A2", "参加者: 田中, 佐藤")
	return f.SaveAs(path)
}

// stampPNG draws a small red disc, standing in for a scanned seal.
func stampPNG() ([]byte, error) {
	const size = 48
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := size / 2
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx, dy := x-center, y-center
			if dx*dx+dy*dy <= center*center {
				img.Set(x, y, color.RGBA{R: 196, G: 30, B: 30, A: 255})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
