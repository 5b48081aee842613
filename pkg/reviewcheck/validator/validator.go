// Package validator pairs review documents by project key and checks
// cross-document consistency: approval date, reviewer name, and the
// presence of an embedded stamp image.
package validator

import (
	"sort"
	"strings"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

// Labels the validation rules look up on extracted documents. Configured
// cell labels must use these names for the corresponding cells.
const (
	LabelProjectName  = "project name"
	LabelDate         = "date"
	LabelApprovalDate = "approval date"
	LabelAssignee     = "assignee"
	LabelReviewer     = "reviewer"
)

// Pair groups the checklist and record documents that share one project key.
type Pair struct {
	// ProjectKey is the shared identity of the pair.
	ProjectKey string
	// Checklist is the checklist document, nil until one is added.
	Checklist *models.ExtractedRecord
	// Record is the record document, nil until one is added.
	Record *models.ExtractedRecord
}

func (p *Pair) hasBoth() bool {
	return p.Checklist != nil && p.Record != nil
}

func (p *Pair) hasChecklistOnly() bool {
	return p.Checklist != nil && p.Record == nil
}

func (p *Pair) hasRecordOnly() bool {
	return p.Checklist == nil && p.Record != nil
}

// validate derives the consistency verdict for the pair. The result is a
// pure function of the pair contents, so repeated calls yield equal verdicts.
func (p *Pair) validate() models.Verdict {
	v := models.Verdict{ProjectKey: p.ProjectKey, Warnings: []string{}}

	if p.hasChecklistOnly() {
		v.Status = models.StatusMissingRecord
		v.Warnings = append(v.Warnings, models.WarningRecordNotFound)
		return v
	}

	if p.hasRecordOnly() {
		hasStamp := p.checkStamp()
		v.HasStamp = &hasStamp
		v.Status = models.StatusMissingChecklist
		v.Warnings = append(v.Warnings, models.WarningChecklistNotFound)
		if !hasStamp {
			v.Status = models.StatusMissingChecklistNoStamp
			v.Warnings = append(v.Warnings, models.WarningStampMissing)
		}
		return v
	}

	dateMatch := p.dateMatches()
	reviewerMatch := p.reviewerMatches()
	hasStamp := p.checkStamp()

	v.HasPair = true
	v.DateMatch = &dateMatch
	v.ReviewerMatch = &reviewerMatch
	v.HasStamp = &hasStamp

	if dateMatch && reviewerMatch && hasStamp {
		v.Status = models.StatusOK
		return v
	}

	v.Status = models.StatusInconsistent
	if !dateMatch {
		v.Warnings = append(v.Warnings, models.WarningDateMismatch)
	}
	if !reviewerMatch {
		v.Warnings = append(v.Warnings, models.WarningReviewerMismatch)
	}
	if !hasStamp {
		v.Warnings = append(v.Warnings, models.WarningStampMissing)
	}
	return v
}

// dateMatches compares the checklist "date" against the record
// "approval date". An absent label forces a mismatch.
func (p *Pair) dateMatches() bool {
	if !p.hasBoth() {
		return false
	}

	checklistDate, ok := p.Checklist.ValueByLabel(LabelDate)
	if !ok {
		return false
	}
	recordDate, ok := p.Record.ValueByLabel(LabelApprovalDate)
	if !ok {
		return false
	}

	return checklistDate == stripLabelPrefix(recordDate)
}

// reviewerMatches compares the checklist "assignee" against the record
// "reviewer". An absent label forces a mismatch.
func (p *Pair) reviewerMatches() bool {
	if !p.hasBoth() {
		return false
	}

	checklistReviewer, ok := p.Checklist.ValueByLabel(LabelAssignee)
	if !ok {
		return false
	}
	recordReviewer, ok := p.Record.ValueByLabel(LabelReviewer)
	if !ok {
		return false
	}

	return checklistReviewer == stripLabelPrefix(recordReviewer)
}

// checkStamp reports whether the record document carries at least one
// anchored picture. A record with no image checks counts as unstamped.
func (p *Pair) checkStamp() bool {
	if p.Record == nil {
		return false
	}
	for _, status := range p.Record.ImageResults {
		if status == models.ImagePresent {
			return true
		}
	}
	return false
}

// stripLabelPrefix removes a leading "label:" from record-side values
// ("approval date: 2025-01-15" becomes "2025-01-15"). Values without a
// colon pass through unchanged.
func stripLabelPrefix(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// Engine accumulates classified documents and validates them pairwise.
// One Engine serves one batch run; it is not safe for concurrent use.
type Engine struct {
	pairs map[string]*Pair
}

// New creates an empty pairing engine.
func New() *Engine {
	return &Engine{pairs: make(map[string]*Pair)}
}

// AddFile registers an extracted document under its project key.
// Documents with RoleUnknown are dropped so a misclassified file cannot
// disturb pairing state. A later document of the same role for the same
// key overwrites the earlier one.
func (e *Engine) AddFile(rec *models.ExtractedRecord, role models.Role) {
	if role != models.RoleChecklist && role != models.RoleRecord {
		return
	}

	key := projectKey(rec)
	pair, ok := e.pairs[key]
	if !ok {
		pair = &Pair{ProjectKey: key}
		e.pairs[key] = pair
	}

	switch role {
	case models.RoleChecklist:
		pair.Checklist = rec
	case models.RoleRecord:
		pair.Record = rec
	}
}

// ValidateAll computes one verdict per project key, in lexicographically
// sorted key order so output does not depend on insertion order.
func (e *Engine) ValidateAll() []models.Verdict {
	keys := make([]string, 0, len(e.pairs))
	for key := range e.pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	verdicts := make([]models.Verdict, 0, len(keys))
	for _, key := range keys {
		verdicts = append(verdicts, e.pairs[key].validate())
	}
	return verdicts
}

// projectKey resolves the pairing identity of a document: the value under
// the "project name" label, or a filename-derived fallback when the label
// is absent so no document is ever silently dropped.
func projectKey(rec *models.ExtractedRecord) string {
	if key, ok := rec.ValueByLabel(LabelProjectName); ok {
		return key
	}
	return "Unknown_" + rec.Filename
}
