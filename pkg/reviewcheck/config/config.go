// Package config loads the INI run configuration: global settings plus one
// file type rule per [FILE_TYPE_N] section.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

// ErrMissingSetting indicates a required [SETTINGS] key is absent.
var ErrMissingSetting = errors.New("missing required setting")

// ErrNoFileTypes indicates the configuration defines no [FILE_TYPE_N] section.
var ErrNoFileTypes = errors.New("no file type rules configured")

// ErrDuplicateLabel indicates a cell label occurs twice within one rule,
// which would make label lookups ambiguous.
var ErrDuplicateLabel = errors.New("duplicate cell label")

// Settings holds the global [SETTINGS] section.
type Settings struct {
	// TargetDir is the root directory searched for documents. Relative
	// paths resolve against the configuration file's directory.
	TargetDir string
	// SearchKeyword optionally narrows the search to file names
	// containing it. Empty matches every file.
	SearchKeyword string
	// OutputFilename is the report file name, written next to the
	// configuration file.
	OutputFilename string
}

// Config is the fully parsed and validated run configuration.
type Config struct {
	// Settings holds the global options.
	Settings Settings
	// FileTypes holds the document rules in section-number order.
	FileTypes []models.FileTypeRule
	// Dir is the directory containing the configuration file. Report
	// output is resolved against it.
	Dir string
}

var fileTypeKey = regexp.MustCompile(`^file_type_(\d+)\.`)

// Load reads and validates an INI configuration file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var missing []string
	for _, key := range []string{"target_dir", "output_filename"} {
		if !v.IsSet("settings." + key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}

	cfg := &Config{
		Settings: Settings{
			TargetDir:      v.GetString("settings.target_dir"),
			SearchKeyword:  v.GetString("settings.search_keyword"),
			OutputFilename: v.GetString("settings.output_filename"),
		},
		Dir: filepath.Dir(path),
	}
	if !filepath.IsAbs(cfg.Settings.TargetDir) {
		cfg.Settings.TargetDir = filepath.Join(cfg.Dir, cfg.Settings.TargetDir)
	}

	for _, n := range fileTypeNumbers(v) {
		rule, err := loadRule(v, n)
		if err != nil {
			return nil, err
		}
		cfg.FileTypes = append(cfg.FileTypes, *rule)
	}
	if len(cfg.FileTypes) == 0 {
		return nil, ErrNoFileTypes
	}

	return cfg, nil
}

// fileTypeNumbers scans the configuration keys for [FILE_TYPE_N] sections
// and returns the distinct Ns in ascending order.
func fileTypeNumbers(v *viper.Viper) []int {
	seen := make(map[int]bool)
	for _, key := range v.AllKeys() {
		m := fileTypeKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seen[n] = true
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func loadRule(v *viper.Viper, n int) (*models.FileTypeRule, error) {
	section := fmt.Sprintf("file_type_%d", n)
	get := func(key string) string {
		return v.GetString(section + "." + key)
	}

	rule := &models.FileTypeRule{
		Name:        get("name"),
		FilePattern: get("file_pattern"),
		TargetSheet: get("target_sheet"),
	}
	if rule.Name == "" {
		rule.Name = section
	}

	switch role := get("role"); role {
	case string(models.RoleChecklist):
		rule.Role = models.RoleChecklist
	case string(models.RoleRecord):
		rule.Role = models.RoleRecord
	default:
		return nil, fmt.Errorf("%s: invalid role %q (must be checklist or record)", section, role)
	}

	if rule.FilePattern == "" {
		return nil, fmt.Errorf("%s: file_pattern is required", section)
	}
	if _, err := filepath.Match(rule.FilePattern, "probe"); err != nil {
		return nil, fmt.Errorf("%s: invalid file_pattern %q: %w", section, rule.FilePattern, err)
	}

	var err error
	rule.TargetCells, err = parseCellList(get("target_cells"))
	if err != nil {
		return nil, fmt.Errorf("%s: target_cells: %w", section, err)
	}
	if len(rule.TargetCells) == 0 {
		return nil, fmt.Errorf("%s: target_cells is required", section)
	}
	rule.ImageCheckCells, err = parseCellList(get("image_check_cells"))
	if err != nil {
		return nil, fmt.Errorf("%s: image_check_cells: %w", section, err)
	}

	rule.CellLabels = parseLabelList(get("cell_labels"))
	if len(rule.CellLabels) > len(rule.TargetCells) {
		return nil, fmt.Errorf("%s: %d labels for %d target cells", section, len(rule.CellLabels), len(rule.TargetCells))
	}
	if dup := firstDuplicateLabel(rule.CellLabels); dup != "" {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateLabel, dup, section)
	}

	return rule, nil
}

// parseCellList splits a comma-separated list of A1-style addresses,
// validating and uppercasing each. Blank entries are dropped.
func parseCellList(raw string) ([]string, error) {
	var cells []string
	for _, part := range strings.Split(raw, ",") {
		cell := strings.ToUpper(strings.TrimSpace(part))
		if cell == "" {
			continue
		}
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return nil, fmt.Errorf("invalid cell address %q: %w", cell, err)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// parseLabelList splits a comma-separated label list, trimming each entry.
// Blank entries are kept: they hold the position of unlabeled cells.
func parseLabelList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	labels := make([]string, len(parts))
	for i, part := range parts {
		labels[i] = strings.TrimSpace(part)
	}
	return labels
}

// firstDuplicateLabel returns the first non-blank label that repeats, or "".
func firstDuplicateLabel(labels []string) string {
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		if seen[label] {
			return label
		}
		seen[label] = true
	}
	return ""
}

// ClassifyFile matches a base file name against the rules in order and
// returns the first match. Files no rule matches classify as RoleUnknown.
func (c *Config) ClassifyFile(filename string) (*models.FileTypeRule, models.Role) {
	for i := range c.FileTypes {
		rule := &c.FileTypes[i]
		if ok, _ := filepath.Match(rule.FilePattern, filename); ok {
			return rule, rule.Role
		}
	}
	return nil, models.RoleUnknown
}

// OutputPath resolves the report location next to the configuration file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Dir, c.Settings.OutputFilename)
}
