package srs

import (
	"math"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// calculateNewEaseFactor determines the new ease factor based on the review outcome.
//
// The ease factor represents the item's difficulty - higher values mean the word
// is easier and intervals will grow faster. A firm recall nudges it up, a fuzzy
// recall nudges it down, and forgetting pushes it down harder.
//
// The result is always clamped to [params.MinEaseFactor, params.MaxEaseFactor]
// so items can never become excessively hard or easy. Only the computed output
// is clamped; out-of-range inputs are a precondition violation rejected by the
// Service before this function runs.
func calculateNewEaseFactor(
	currentEF float64,
	outcome domain.ReviewOutcome,
	params *Params,
) float64 {
	newEF := currentEF

	switch outcome {
	case domain.ReviewOutcomeKnow:
		newEF += params.KnowEaseBonus
	case domain.ReviewOutcomeVague:
		newEF -= params.VagueEasePenalty
	case domain.ReviewOutcomeForget:
		newEF -= params.ForgetEasePenalty
	}

	// Ensure ease factor stays within configured limits
	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	if newEF > params.MaxEaseFactor {
		newEF = params.MaxEaseFactor
	}

	return newEF
}

// calculateKnowInterval determines the new interval after a firm recall.
//
// The first two recalls follow the fixed ladder from the params (1 day, then
// 6 days by default). From the third recall on, the current interval grows by
// the new ease factor, rounded to whole days with a floor of one day.
//
// Parameters:
//   - currentInterval: The interval in days before this review
//   - knowCount: The recall count including this review
//   - easeFactor: The already-adjusted ease factor for this review
//   - params: Configuration parameters for the algorithm
func calculateKnowInterval(
	currentInterval int,
	knowCount int,
	easeFactor float64,
	params *Params,
) int {
	switch knowCount {
	case 1:
		return params.FirstKnowInterval
	case 2:
		return params.SecondKnowInterval
	}

	next := int(math.Round(float64(currentInterval) * easeFactor))
	if next < 1 {
		next = 1
	}
	return next
}

// calculateNextReviewDate converts an interval into the item's next due date.
// The result is normalized to the start of the day so that every item due on
// the same day compares equal, regardless of the time of day it was reviewed.
func calculateNextReviewDate(interval int, now time.Time) time.Time {
	return domain.StartOfDay(now).AddDate(0, 0, interval)
}

// applyReview computes the next state of a vocabulary item after a review
// outcome, following immutability principles by returning a new item rather
// than modifying the existing one.
//
// Outcome behavior:
//   - know: increments the recall count, raises the ease factor, advances the
//     interval along the ladder, and reschedules the item. The item graduates
//     to mastered once the new interval reaches params.MasteredInterval.
//   - vague: only records the fuzzy recall and lowers the ease factor. The
//     interval and due date stay put - a fuzzy recall should not advance the
//     schedule, only signal growing difficulty, so the item remains due until
//     it is reviewed with a firm outcome.
//   - forget: resets the recall count and lowers the ease factor, but keeps
//     the current interval and due date so the item comes back at the pace it
//     already had.
//
// Every outcome stamps ReviewedAt/UpdatedAt with now and marks the item as
// needing sync.
func applyReview(
	item *domain.Vocabulary,
	outcome domain.ReviewOutcome,
	now time.Time,
	params *Params,
) *domain.Vocabulary {
	next := item.Clone()

	next.EaseFactor = calculateNewEaseFactor(item.EaseFactor, outcome, params)

	switch outcome {
	case domain.ReviewOutcomeKnow:
		next.KnowCount++
		next.Interval = calculateKnowInterval(item.Interval, next.KnowCount, next.EaseFactor, params)
		next.NextReview = calculateNextReviewDate(next.Interval, now)
		if next.Interval >= params.MasteredInterval {
			next.Status = domain.StatusMastered
		} else {
			next.Status = domain.StatusLearning
		}

	case domain.ReviewOutcomeVague:
		next.VagueCount++
		next.Status = domain.StatusLearning

	case domain.ReviewOutcomeForget:
		next.ForgetCount++
		next.KnowCount = 0
		next.Status = domain.StatusLearning
	}

	reviewedAt := now
	next.ReviewedAt = &reviewedAt
	next.UpdatedAt = now
	next.IsSynced = false

	return next
}

// applyReset returns the item to its initial new-word state: counters zeroed,
// default ease factor, immediately due. The review history is not touched and
// no review log is produced - a reset is not a review outcome.
func applyReset(item *domain.Vocabulary, now time.Time) *domain.Vocabulary {
	next := item.Clone()

	next.Status = domain.StatusNew
	next.Interval = 0
	next.EaseFactor = domain.DefaultEaseFactor
	next.KnowCount = 0
	next.VagueCount = 0
	next.ForgetCount = 0
	next.NextReview = domain.StartOfDay(now)
	next.UpdatedAt = now
	next.IsSynced = false

	return next
}
