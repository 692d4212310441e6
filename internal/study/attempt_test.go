package study_test

import (
	"testing"
	"time"

	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/study"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	p := study.NewProgress(7)

	assert.NotEqual(t, uuid.Nil, p.ProgressID)
	assert.Equal(t, uint(7), p.FlashcardID)
	assert.Zero(t, p.TimesSeen)
	assert.Zero(t, p.TimesWrong)
	assert.Nil(t, p.LastSeen)
}

func TestApplyAttempt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("正解は seen のみ増える", func(t *testing.T) {
		p := study.NewProgress(1)
		study.ApplyAttempt(p, true, now)

		assert.Equal(t, 1, p.TimesSeen)
		assert.Equal(t, 0, p.TimesWrong)
		require.NotNil(t, p.LastSeen)
		assert.True(t, now.Equal(*p.LastSeen))
	})

	t.Run("不正解は seen と wrong が増える", func(t *testing.T) {
		p := &model.Progress{TimesSeen: 4, TimesWrong: 1}
		study.ApplyAttempt(p, false, now)

		assert.Equal(t, 5, p.TimesSeen)
		assert.Equal(t, 2, p.TimesWrong)
	})

	t.Run("同じ呼び出しを2回すると2回分記録される", func(t *testing.T) {
		p := study.NewProgress(1)
		study.ApplyAttempt(p, false, now)
		study.ApplyAttempt(p, false, now)

		assert.Equal(t, 2, p.TimesSeen)
		assert.Equal(t, 2, p.TimesWrong)
	})

	t.Run("last_seen は巻き戻らない", func(t *testing.T) {
		later := now.Add(time.Hour)
		p := &model.Progress{TimesSeen: 1, LastSeen: &later}
		study.ApplyAttempt(p, true, now)

		require.NotNil(t, p.LastSeen)
		assert.True(t, later.Equal(*p.LastSeen))
		assert.Equal(t, 2, p.TimesSeen)
	})

	t.Run("wrong は seen を超えない", func(t *testing.T) {
		p := study.NewProgress(1)
		for i := 0; i < 20; i++ {
			study.ApplyAttempt(p, i%3 != 0, now.Add(time.Duration(i)*time.Minute))
			assert.LessOrEqual(t, p.TimesWrong, p.TimesSeen)
		}
	})
}
