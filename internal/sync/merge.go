package sync

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// MergeVocabularies reconciles two vocabulary collections into one.
//
// The natural key is the word, not the surrogate id: ids are auto-assigned
// per store and the same number routinely refers to unrelated words in two
// independently grown stores. Conflict resolution picks the later review
// state - whichever side was reviewed more recently wins, with the creation
// time as tie-breaker and local winning any remaining tie.
//
// Two id rules keep the destination store consistent:
//   - a remote-only word is inserted with its id stripped, so the store
//     assigns a fresh one instead of colliding with an unrelated local row
//   - when the remote version of a shared word wins, it keeps the LOCAL id,
//     so the existing local row is updated in place rather than duplicated
func MergeVocabularies(local, remote []*domain.Vocabulary) []*domain.Vocabulary {
	merged := make(map[string]*domain.Vocabulary, len(local)+len(remote))

	// Seed with all local items first
	for _, item := range local {
		merged[item.Word] = item.Clone()
	}

	for _, remoteItem := range remote {
		localItem, ok := merged[remoteItem.Word]
		if !ok {
			// New word from remote: strip the id so the destination
			// store assigns its own on persist.
			clone := remoteItem.Clone()
			clone.ID = 0
			merged[remoteItem.Word] = clone
			continue
		}

		if !remoteWins(localItem, remoteItem) {
			continue
		}

		// Remote has the newer learning progress. Keep the local row's
		// id so the record is updated in place, not duplicated.
		clone := remoteItem.Clone()
		clone.ID = localItem.ID
		merged[remoteItem.Word] = clone
	}

	result := make([]*domain.Vocabulary, 0, len(merged))
	for _, item := range merged {
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Word < result[j].Word
	})

	return result
}

// remoteWins decides a vocabulary conflict. A never-reviewed side carries
// the zero time and therefore loses to any reviewed side.
func remoteWins(local, remote *domain.Vocabulary) bool {
	localTS := local.ReviewedTime()
	remoteTS := remote.ReviewedTime()

	if remoteTS.After(localTS) {
		return true
	}

	if remoteTS.Equal(localTS) {
		// Same review state; the later-created record wins. An exact
		// tie on both keeps local unconditionally.
		return remote.CreatedAt.After(local.CreatedAt)
	}

	return false
}

// MergeReviewLogs reconciles two append-only review log collections. Logs
// are never in conflict, only duplicated, so the merge is deduplication:
// every local entry is kept, and a remote entry is added only when no local
// entry already occupies one of its keys. The result is sorted newest first.
//
// A log entry has up to two identities. Its locally assigned id is
// authoritative and keeps otherwise-identical entries apart (two reviews of
// the same word in the same millisecond are two records, and merging a
// store with itself must not collapse them). Its content key - word plus
// creation time - is what identifies it once the id has been stripped by a
// previous sync, which is why a remote entry matching either identity is a
// duplicate. Inserted remote entries always have their id stripped: a
// foreign id likely belongs to an unrelated local row, so the destination
// store assigns a fresh one on persist.
func MergeReviewLogs(local, remote []*domain.ReviewLog) []*domain.ReviewLog {
	occupied := make(map[string]bool, 2*len(local))
	result := make([]*domain.ReviewLog, 0, len(local)+len(remote))

	for _, entry := range local {
		result = append(result, entry.Clone())
		if entry.ID != 0 {
			occupied[idKey(entry.ID)] = true
		}
		occupied[reviewLogContentKey(entry)] = true
	}

	for _, entry := range remote {
		if entry.ID != 0 && occupied[idKey(entry.ID)] {
			// Same store: the exact record is already present.
			continue
		}
		key := reviewLogContentKey(entry)
		if occupied[key] {
			continue
		}
		clone := entry.Clone()
		clone.ID = 0
		result = append(result, clone)
		occupied[key] = true
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

// MergeStudyLogs reconciles two append-only study log collections using the
// same local-first deduplication as MergeReviewLogs.
func MergeStudyLogs(local, remote []*domain.StudyLog) []*domain.StudyLog {
	occupied := make(map[string]bool, 2*len(local))
	result := make([]*domain.StudyLog, 0, len(local)+len(remote))

	for _, entry := range local {
		result = append(result, entry.Clone())
		if entry.ID != 0 {
			occupied[idKey(entry.ID)] = true
		}
		occupied[studyLogContentKey(entry)] = true
	}

	for _, entry := range remote {
		if entry.ID != 0 && occupied[idKey(entry.ID)] {
			continue
		}
		key := studyLogContentKey(entry)
		if occupied[key] {
			continue
		}
		clone := entry.Clone()
		clone.ID = 0
		result = append(result, clone)
		occupied[key] = true
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

func idKey(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}

// reviewLogContentKey derives the content identity of a review log entry.
func reviewLogContentKey(entry *domain.ReviewLog) string {
	return fmt.Sprintf("%s_%d", entry.Word, entry.CreatedAt.UnixMilli())
}

// studyLogContentKey derives the content identity of a study log entry.
// Study logs have no word, so the key folds in every counter to keep
// same-millisecond sessions with different results apart.
func studyLogContentKey(entry *domain.StudyLog) string {
	return fmt.Sprintf("%d_%d_%d_%d_%g",
		entry.CreatedAt.UnixMilli(),
		entry.KnowCount,
		entry.VagueCount,
		entry.ForgetCount,
		entry.AccuracyRate,
	)
}

// MergeAudioClips reconciles two audio collections. The storage key
// ("{word}_{accent}") is already the natural key, so there is no id
// collision problem: local wins any conflict and remote-only clips are
// added as-is.
func MergeAudioClips(local, remote []*domain.AudioClip) []*domain.AudioClip {
	merged := make(map[string]*domain.AudioClip, len(local)+len(remote))

	for _, clip := range local {
		merged[clip.Key] = clip.Clone()
	}

	for _, clip := range remote {
		if _, ok := merged[clip.Key]; ok {
			continue
		}
		merged[clip.Key] = clip.Clone()
	}

	result := make([]*domain.AudioClip, 0, len(merged))
	for _, clip := range merged {
		result = append(result, clip)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// MergeSettings merges two settings maps field-wise: remote values overwrite
// local ones for every key the remote carries, and keys absent from remote
// are preserved from local.
//
// Settings have no timestamps, so there is no principled last-write-wins
// here - the remote-overwrites rule is a deliberate, documented asymmetry,
// not a derived invariant.
func MergeSettings(local, remote map[string]string) map[string]string {
	merged := make(map[string]string, len(local)+len(remote))

	for k, v := range local {
		merged[k] = v
	}

	for k, v := range remote {
		merged[k] = v
	}

	return merged
}
