package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

func checklistDoc(project, date, assignee string) *models.ExtractedRecord {
	return &models.ExtractedRecord{
		Filename:   project + "_review_checklist.xlsx",
		CellValues: []interface{}{project, date, assignee},
		CellLabels: []string{LabelProjectName, LabelDate, LabelAssignee},
		Role:       models.RoleChecklist,
	}
}

func recordDoc(project, approvalDate, reviewer string, images ...models.ImageStatus) *models.ExtractedRecord {
	return &models.ExtractedRecord{
		Filename:     project + "_review_record.xlsx",
		CellValues:   []interface{}{project, approvalDate, reviewer},
		CellLabels:   []string{LabelProjectName, LabelApprovalDate, LabelReviewer},
		ImageResults: images,
		Role:         models.RoleRecord,
	}
}

func TestValidateAllCompletePair(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "approval date: 2025-01-01", "reviewer: Yamada", models.ImagePresent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.Equal(t, "P1", v.ProjectKey)
	assert.True(t, v.HasPair)
	assert.Equal(t, models.StatusOK, v.Status)
	assert.Empty(t, v.Warnings)
	require.NotNil(t, v.DateMatch)
	require.NotNil(t, v.ReviewerMatch)
	require.NotNil(t, v.HasStamp)
	assert.True(t, *v.DateMatch)
	assert.True(t, *v.ReviewerMatch)
	assert.True(t, *v.HasStamp)
}

func TestValidateAllDateMismatch(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "approval date: 2025-02-01", "reviewer: Yamada", models.ImagePresent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.True(t, v.HasPair)
	assert.Equal(t, models.StatusInconsistent, v.Status)
	assert.Equal(t, []string{models.WarningDateMismatch}, v.Warnings)
	require.NotNil(t, v.DateMatch)
	assert.False(t, *v.DateMatch)
}

func TestValidateAllChecklistOnly(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P2", "2025-01-01", "Yamada"), models.RoleChecklist)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.False(t, v.HasPair)
	assert.Equal(t, models.StatusMissingRecord, v.Status)
	assert.Equal(t, []string{models.WarningRecordNotFound}, v.Warnings)
	assert.Nil(t, v.DateMatch)
	assert.Nil(t, v.ReviewerMatch)
	assert.Nil(t, v.HasStamp)
}

func TestValidateAllRecordOnlyWithStamp(t *testing.T) {
	e := New()
	e.AddFile(recordDoc("P3", "2025-01-01", "Sato", models.ImagePresent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.False(t, v.HasPair)
	assert.Equal(t, models.StatusMissingChecklist, v.Status)
	assert.Equal(t, []string{models.WarningChecklistNotFound}, v.Warnings)
	require.NotNil(t, v.HasStamp)
	assert.True(t, *v.HasStamp)
}

func TestValidateAllRecordOnlyWithoutStamp(t *testing.T) {
	e := New()
	e.AddFile(recordDoc("P3", "2025-01-01", "Sato", models.ImageAbsent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.False(t, v.HasPair)
	assert.Equal(t, models.StatusMissingChecklistNoStamp, v.Status)
	assert.Equal(t, []string{models.WarningChecklistNotFound, models.WarningStampMissing}, v.Warnings)
	require.NotNil(t, v.HasStamp)
	assert.False(t, *v.HasStamp)
}

func TestAddFileDropsUnknownRole(t *testing.T) {
	e := New()
	e.AddFile(&models.ExtractedRecord{
		Filename:   "other_document.xlsx",
		CellValues: []interface{}{"P9"},
		CellLabels: []string{LabelProjectName},
		Role:       models.RoleUnknown,
	}, models.RoleUnknown)

	assert.Empty(t, e.pairs)
	assert.Empty(t, e.ValidateAll())
}

func TestValidateAllWarningOrder(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "2025-02-01", "Suzuki", models.ImageAbsent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.Equal(t, models.StatusInconsistent, v.Status)
	assert.Equal(t, []string{
		models.WarningDateMismatch,
		models.WarningReviewerMismatch,
		models.WarningStampMissing,
	}, v.Warnings)
}

func TestValidateAllStampOnlyMismatch(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "2025-01-01", "Yamada"), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.True(t, v.HasPair)
	assert.Equal(t, models.StatusInconsistent, v.Status)
	assert.Equal(t, []string{models.WarningStampMissing}, v.Warnings)
	require.NotNil(t, v.DateMatch)
	assert.True(t, *v.DateMatch)
}

func TestColonStripAppliesToRecordSideOnly(t *testing.T) {
	// The record side carries the "label: value" convention; the checklist
	// side is compared verbatim.
	e := New()
	e.AddFile(checklistDoc("P1", "date: 2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "2025-01-01", "reviewer: Yamada", models.ImagePresent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	require.NotNil(t, v.DateMatch)
	assert.False(t, *v.DateMatch, "checklist-side prefix must not be stripped")
	require.NotNil(t, v.ReviewerMatch)
	assert.True(t, *v.ReviewerMatch)
}

func TestAbsentLabelForcesMismatch(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	rec := &models.ExtractedRecord{
		Filename:     "P1_review_record.xlsx",
		CellValues:   []interface{}{"P1", "reviewer: Yamada"},
		CellLabels:   []string{LabelProjectName, LabelReviewer},
		ImageResults: []models.ImageStatus{models.ImagePresent},
		Role:         models.RoleRecord,
	}
	e.AddFile(rec, models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.Equal(t, models.StatusInconsistent, v.Status)
	assert.Equal(t, []string{models.WarningDateMismatch}, v.Warnings)
}

func TestUnsupportedImagesDoNotCountAsStamp(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "2025-01-01", "Yamada", models.ImageUnsupported, models.ImageUnsupported), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	require.NotNil(t, v.HasStamp)
	assert.False(t, *v.HasStamp)
	assert.Contains(t, v.Warnings, models.WarningStampMissing)
}

func TestProjectKeyFallback(t *testing.T) {
	e := New()
	rec := &models.ExtractedRecord{
		Filename:   "stray_review_checklist.xlsx",
		CellValues: []interface{}{"2025-01-01"},
		CellLabels: []string{LabelDate},
		Role:       models.RoleChecklist,
	}
	e.AddFile(rec, models.RoleChecklist)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)
	assert.Equal(t, "Unknown_stray_review_checklist.xlsx", verdicts[0].ProjectKey)
}

func TestProjectKeyEmptyValueIsNotFallback(t *testing.T) {
	// A present but empty project name is a legitimate key; only an absent
	// label falls back to the filename.
	e := New()
	rec := &models.ExtractedRecord{
		Filename:   "empty_review_checklist.xlsx",
		CellValues: []interface{}{""},
		CellLabels: []string{LabelProjectName},
		Role:       models.RoleChecklist,
	}
	e.AddFile(rec, models.RoleChecklist)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)
	assert.Equal(t, "", verdicts[0].ProjectKey)
}

func TestFallbackKeyCollisionLastWriteWins(t *testing.T) {
	// Two unrelated label-less documents from different directories share
	// a base name, so they share the fallback key. The overwrite is the
	// accepted behavior, kept deliberate rather than detected.
	e := New()
	first := &models.ExtractedRecord{
		Path:       "a/review_record.xlsx",
		Filename:   "review_record.xlsx",
		CellValues: []interface{}{"2025-01-01"},
		CellLabels: []string{LabelApprovalDate},
		Role:       models.RoleRecord,
	}
	second := &models.ExtractedRecord{
		Path:       "b/review_record.xlsx",
		Filename:   "review_record.xlsx",
		CellValues: []interface{}{"2025-02-02"},
		CellLabels: []string{LabelApprovalDate},
		Role:       models.RoleRecord,
	}
	e.AddFile(first, models.RoleRecord)
	e.AddFile(second, models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)
	assert.Equal(t, "Unknown_review_record.xlsx", verdicts[0].ProjectKey)
	assert.Same(t, second, e.pairs["Unknown_review_record.xlsx"].Record)
}

func TestLastWriteWins(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(checklistDoc("P1", "2025-03-03", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P1", "2025-03-03", "Yamada", models.ImagePresent), models.RoleRecord)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 1)
	assert.Equal(t, models.StatusOK, verdicts[0].Status)
}

func TestValidateAllSortedByKey(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("zeta", "2025-01-01", "A"), models.RoleChecklist)
	e.AddFile(checklistDoc("alpha", "2025-01-01", "B"), models.RoleChecklist)
	e.AddFile(checklistDoc("mid", "2025-01-01", "C"), models.RoleChecklist)

	verdicts := e.ValidateAll()
	require.Len(t, verdicts, 3)
	assert.Equal(t, "alpha", verdicts[0].ProjectKey)
	assert.Equal(t, "mid", verdicts[1].ProjectKey)
	assert.Equal(t, "zeta", verdicts[2].ProjectKey)
}

func TestValidateAllInsertionOrderIndependent(t *testing.T) {
	docs := []struct {
		rec  *models.ExtractedRecord
		role models.Role
	}{
		{checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist},
		{recordDoc("P1", "2025-01-01", "Yamada", models.ImagePresent), models.RoleRecord},
		{checklistDoc("P2", "2025-02-02", "Sato"), models.RoleChecklist},
		{recordDoc("P3", "2025-03-03", "Suzuki", models.ImageAbsent), models.RoleRecord},
	}

	forward := New()
	for _, d := range docs {
		forward.AddFile(d.rec, d.role)
	}

	backward := New()
	for i := len(docs) - 1; i >= 0; i-- {
		backward.AddFile(docs[i].rec, docs[i].role)
	}

	assert.Equal(t, forward.ValidateAll(), backward.ValidateAll())
}

func TestValidateAllIdempotent(t *testing.T) {
	e := New()
	e.AddFile(checklistDoc("P1", "2025-01-01", "Yamada"), models.RoleChecklist)
	e.AddFile(recordDoc("P2", "2025-01-01", "Sato", models.ImageAbsent), models.RoleRecord)

	first := e.ValidateAll()
	second := e.ValidateAll()
	assert.Equal(t, first, second)
}

func TestAddFileCompleteness(t *testing.T) {
	// Every checklist or record insertion must be reachable from exactly
	// one pair.
	e := New()
	inserted := []*models.ExtractedRecord{
		checklistDoc("P1", "2025-01-01", "A"),
		recordDoc("P1", "2025-01-01", "A", models.ImagePresent),
		checklistDoc("P2", "2025-02-02", "B"),
		recordDoc("P3", "2025-03-03", "C"),
	}
	e.AddFile(inserted[0], models.RoleChecklist)
	e.AddFile(inserted[1], models.RoleRecord)
	e.AddFile(inserted[2], models.RoleChecklist)
	e.AddFile(inserted[3], models.RoleRecord)

	reachable := make(map[*models.ExtractedRecord]int)
	for _, pair := range e.pairs {
		if pair.Checklist != nil {
			reachable[pair.Checklist]++
		}
		if pair.Record != nil {
			reachable[pair.Record]++
		}
	}

	require.Len(t, reachable, len(inserted))
	for _, rec := range inserted {
		assert.Equal(t, 1, reachable[rec], "document %s must belong to exactly one pair", rec.Filename)
	}
}

func TestStripLabelPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"approval date: 2025-01-15", "2025-01-15"},
		{"reviewer: 山田太郎", "山田太郎"},
		{"2025-01-15", "2025-01-15"},
		{"a:b:c", "b:c"},
		{":", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := stripLabelPrefix(tt.input)
		assert.Equal(t, tt.expected, got, "stripLabelPrefix(%q)", tt.input)
	}
}
