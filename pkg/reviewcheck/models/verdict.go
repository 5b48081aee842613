package models

// Validation statuses, one per verdict.
const (
	// StatusOK means the pair is complete and every check passed.
	StatusOK = "OK"
	// StatusInconsistent means the pair is complete but a check failed.
	StatusInconsistent = "inconsistency found"
	// StatusMissingRecord means only the checklist document was found.
	StatusMissingRecord = "missing record"
	// StatusMissingChecklist means only the record document was found.
	StatusMissingChecklist = "missing checklist"
	// StatusMissingChecklistNoStamp means only the record document was
	// found and it carries no stamp.
	StatusMissingChecklistNoStamp = "missing checklist, missing stamp"
)

// Warning messages attached to verdicts, one per detected inconsistency.
const (
	WarningDateMismatch      = "date mismatch"
	WarningReviewerMismatch  = "reviewer mismatch"
	WarningStampMissing      = "stamp missing"
	WarningRecordNotFound    = "record document not found"
	WarningChecklistNotFound = "checklist document not found"
)

// Verdict is the computed consistency result for one project key.
// It is immutable once computed.
type Verdict struct {
	// ProjectKey identifies the pair the verdict belongs to.
	ProjectKey string `json:"project_key"`
	// HasPair reports whether both document roles are present.
	HasPair bool `json:"has_pair"`
	// DateMatch is nil when the pair is incomplete.
	DateMatch *bool `json:"date_match"`
	// ReviewerMatch is nil when the pair is incomplete.
	ReviewerMatch *bool `json:"reviewer_match"`
	// HasStamp is nil only when no record document exists.
	HasStamp *bool `json:"has_stamp"`
	// Status is one of the Status constants.
	Status string `json:"status"`
	// Warnings lists detected inconsistencies; empty when consistent.
	Warnings []string `json:"warnings"`
}

// Summary holds batch-level counts reduced from a verdict sequence.
type Summary struct {
	// Total is the number of distinct project keys.
	Total int `json:"total"`
	// Complete counts pairs with both documents present.
	Complete int `json:"complete"`
	// ChecklistOnly counts pairs missing the record document.
	ChecklistOnly int `json:"checklist_only"`
	// RecordOnly counts pairs missing the checklist document.
	RecordOnly int `json:"record_only"`
	// StampMissing counts verdicts whose stamp check came back negative.
	StampMissing int `json:"stamp_missing"`
}
