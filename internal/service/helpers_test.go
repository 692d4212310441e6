package service

import (
	"context"
	"testing"

	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテスト毎に独立したインメモリDBを用意します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, repository.Migrate(db), "failed to migrate database for service testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// insertCard は進捗を作らずにカードだけを登録します。
func insertCard(t *testing.T, db *gorm.DB, subject, front string) *model.Flashcard {
	t.Helper()
	card := &model.Flashcard{Subject: subject, Front: front, Back: front + " answer"}
	require.NoError(t, repository.NewGormFlashcardRepository().Create(context.Background(), db, card))
	return card
}

func insertProgress(t *testing.T, db *gorm.DB, p *model.Progress) {
	t.Helper()
	if p.ProgressID == uuid.Nil {
		p.ProgressID = uuid.New()
	}
	require.NoError(t, repository.NewGormProgressRepository().Create(context.Background(), db, p))
}

type testingDeps struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
}

func newTestingDeps(t *testing.T) *testingDeps {
	t.Helper()
	return &testingDeps{
		db:       setupTestDB(t),
		cardRepo: repository.NewGormFlashcardRepository(),
		progRepo: repository.NewGormProgressRepository(),
	}
}
