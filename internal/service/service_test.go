package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocaboost-api/internal/domain/srs"
	"github.com/phrazzld/vocaboost-api/internal/platform/sqlite"
	"github.com/phrazzld/vocaboost-api/internal/service"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// testEnv bundles one in-memory database with every service wired against it,
// mirroring how the application assembles them at startup.
type testEnv struct {
	db         *sql.DB
	vocabStore store.VocabularyStore
	reviewLogs store.ReviewLogStore
	studyLogs  store.StudyLogStore
	audioStore store.AudioStore
	settings   store.SettingsStore
	meta       store.MetaStore

	vocabulary service.VocabularyService
	review     service.ReviewService
	sync       service.SyncService
	settingsSv service.SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	env := &testEnv{
		db:         db,
		vocabStore: sqlite.NewVocabularyStore(db, nil),
		reviewLogs: sqlite.NewReviewLogStore(db, nil),
		studyLogs:  sqlite.NewStudyLogStore(db, nil),
		audioStore: sqlite.NewAudioStore(db, nil),
		settings:   sqlite.NewSettingsStore(db, nil),
		meta:       sqlite.NewMetaStore(db, nil),
	}

	srsService := srs.NewDefaultService()
	env.vocabulary = service.NewVocabularyService(db, env.vocabStore, srsService, nil)
	env.review = service.NewReviewService(
		db, env.vocabStore, env.reviewLogs, env.studyLogs, srsService, nil)
	env.sync = service.NewSyncService(
		db, env.vocabStore, env.reviewLogs, env.studyLogs,
		env.audioStore, env.settings, env.meta, nil)
	env.settingsSv = service.NewSettingsService(env.settings, nil)

	return env
}

func (env *testEnv) mustCreate(t *testing.T, word string) {
	t.Helper()

	_, err := env.vocabulary.Create(context.Background(), word, "definition of "+word, "")
	require.NoError(t, err)
}
