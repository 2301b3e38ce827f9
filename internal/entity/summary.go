package entity

import "time"

// BatchSummary is the run-level report handed to the reporting collaborator
// at the end of a batch run.
type BatchSummary struct {
	CompanyID         string        `json:"company_id"`
	PatternSetVersion string        `json:"pattern_set_version"`
	Processed         int           `json:"processed"`
	Succeeded         int           `json:"succeeded"`
	Failed            int           `json:"failed"`
	DeadLettered      int           `json:"dead_lettered"`
	AverageConfidence float64       `json:"average_confidence"`
	Duration          time.Duration `json:"duration"`
}
