package models

// Telemetry outcomes for a keyword. Each (keyword hash, outcome) pair is one counter row.
const (
	OutcomeAnalyzed = "analyzed"
	OutcomeExported = "exported"
)

// LookupTotal aggregates every counter row of one outcome.
// It never carries a keyword, hashed or not.
type LookupTotal struct {
	Outcome  string `json:"outcome"`
	Total    int64  `json:"total"`    // sum of counts
	Distinct int64  `json:"distinct"` // number of distinct keywords
}

// IsLookupOutcome reports whether outcome is a recorded telemetry outcome.
func IsLookupOutcome(outcome string) bool {
	return outcome == OutcomeAnalyzed || outcome == OutcomeExported
}
