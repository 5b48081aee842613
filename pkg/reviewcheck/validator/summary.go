package validator

import "github.com/example/reviewcheck/pkg/reviewcheck/models"

// Summarize reduces a verdict sequence to batch-level counts.
func Summarize(verdicts []models.Verdict) models.Summary {
	sum := models.Summary{Total: len(verdicts)}

	for _, v := range verdicts {
		if v.HasPair {
			sum.Complete++
		}
		switch v.Status {
		case models.StatusMissingRecord:
			sum.ChecklistOnly++
		case models.StatusMissingChecklist, models.StatusMissingChecklistNoStamp:
			sum.RecordOnly++
		}
		if v.HasStamp != nil && !*v.HasStamp {
			sum.StampMissing++
		}
	}

	return sum
}
