package domain

import "time"

// StudyLog is a daily aggregate of one study session: how many items were
// answered with each outcome and the resulting accuracy. Append-only.
type StudyLog struct {
	ID           int64     `json:"id,omitempty"`
	KnowCount    int       `json:"know_count"`
	VagueCount   int       `json:"vague_count"`
	ForgetCount  int       `json:"forget_count"`
	AccuracyRate float64   `json:"accuracy_rate"` // know / (know + vague + forget)
	CreatedAt    time.Time `json:"created_at"`
}

// NewStudyLog creates a study log for a finished session. The accuracy rate
// is computed here; a session with no answers has an accuracy of 0.
func NewStudyLog(knowCount, vagueCount, forgetCount int, now time.Time) (*StudyLog, error) {
	if knowCount < 0 || vagueCount < 0 || forgetCount < 0 {
		return nil, ErrNegativeCount
	}

	total := knowCount + vagueCount + forgetCount
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(knowCount) / float64(total)
	}

	return &StudyLog{
		KnowCount:    knowCount,
		VagueCount:   vagueCount,
		ForgetCount:  forgetCount,
		AccuracyRate: accuracy,
		CreatedAt:    now,
	}, nil
}

// Total returns the number of answers recorded in the session.
func (l *StudyLog) Total() int {
	return l.KnowCount + l.VagueCount + l.ForgetCount
}

// Clone returns a copy of the study log entry.
func (l *StudyLog) Clone() *StudyLog {
	clone := *l
	return &clone
}
