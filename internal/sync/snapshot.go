package sync

import (
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// Snapshot is the full state of one store at one moment: every collection
// that participates in sync, plus the identity of the device that exported
// it. It is what the sync endpoint serves and accepts.
//
// All fields round-trip losslessly through JSON; times serialize as
// RFC 3339 so two devices agree on them regardless of locale.
type Snapshot struct {
	DeviceID     string                 `json:"device_id"`
	ExportedAt   time.Time              `json:"exported_at"`
	Vocabularies []*domain.Vocabulary   `json:"vocabularies"`
	ReviewLogs   []*domain.ReviewLog    `json:"review_logs"`
	StudyLogs    []*domain.StudyLog     `json:"study_logs"`
	AudioClips   []*domain.AudioClip    `json:"audio_clips"`
	Settings     map[string]string      `json:"settings"`
}

// MergeSnapshots reconciles a remote snapshot into the local one, collection
// by collection, and returns the authoritative merged snapshot. The result
// keeps the local device identity; the caller stamps ExportedAt when it
// serializes the result.
//
// Merging is idempotent: feeding the output back in as either side yields
// an equal result, so a failed persist is retried by simply merging again
// from fresh snapshots.
func MergeSnapshots(local, remote *Snapshot) *Snapshot {
	return &Snapshot{
		DeviceID:     local.DeviceID,
		Vocabularies: MergeVocabularies(local.Vocabularies, remote.Vocabularies),
		ReviewLogs:   MergeReviewLogs(local.ReviewLogs, remote.ReviewLogs),
		StudyLogs:    MergeStudyLogs(local.StudyLogs, remote.StudyLogs),
		AudioClips:   MergeAudioClips(local.AudioClips, remote.AudioClips),
		Settings:     MergeSettings(local.Settings, remote.Settings),
	}
}
