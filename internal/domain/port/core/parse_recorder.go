package core

// Parse outcomes reported to a ParseRecorder
const (
	ParseOutcomeMatched = "matched"
	ParseOutcomeFailed  = "failed"
	ParseOutcomeNoTime  = "no_time"
)

// ParseRecorder receives one observation per parse call: the strategy that produced the
// result (empty on failure), the outcome and the time spent.
type ParseRecorder interface {
	RecordParse(strategy string, outcome string, elapsed Duration)
	RecordAmbiguity(heuristic string)
}
