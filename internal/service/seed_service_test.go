package service

import (
	"context"
	"testing"

	"go_flashcard_study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_seedService_Seed(t *testing.T) {
	ctx := context.Background()
	deps := newTestingDeps(t)
	svc := NewSeedService(deps.db, deps.cardRepo, deps.progRepo)

	created, err := svc.Seed(ctx, SampleDeck)
	require.NoError(t, err)
	assert.Equal(t, 8, created)

	cards, err := deps.cardRepo.List(ctx, deps.db, model.FlashcardFilter{})
	require.NoError(t, err)
	require.Len(t, cards, 8)
	for _, c := range cards {
		require.NotNil(t, c.Progress, "card %q must have progress", c.Front)
		assert.Zero(t, c.Progress.TimesSeen)
		assert.Nil(t, c.Progress.LastSeen)
	}

	t.Run("2回目は何も追加しない", func(t *testing.T) {
		created, err := svc.Seed(ctx, SampleDeck)
		require.NoError(t, err)
		assert.Zero(t, created)
	})

	t.Run("新しいカードだけ追加する", func(t *testing.T) {
		deck := append([]model.CreateFlashcardRequest{}, SampleDeck...)
		deck = append(deck, model.CreateFlashcardRequest{Subject: "Programming", Front: "What does SQL stand for?", Back: "Structured Query Language"})

		created, err := svc.Seed(ctx, deck)
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})
}
