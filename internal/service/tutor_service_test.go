package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go_flashcard_study/internal/ai"
	aimocks "go_flashcard_study/internal/ai/mocks"
	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAIConfig = config.AIConfig{
	Timeout:          time.Second,
	HintMaxTokens:    150,
	ExplainMaxTokens: 200,
}

var tutorCard = model.TutorCard{Front: "What is the capital of France?", Back: "Paris", Subject: "Geography"}

func Test_tutorService_Hint(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 前後の空白を除いたヒント", func(t *testing.T) {
		completer := aimocks.NewCompleter(t)
		completer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Question: What is the capital of France?") &&
				strings.Contains(p, "Answer: Paris") &&
				strings.Contains(p, "Subject: Geography")
		}), 150).Return("  Think of the city of lights.\n", nil).Once()

		resp, err := NewTutorService(completer, testAIConfig).Hint(ctx, tutorCard)
		require.NoError(t, err)
		assert.Equal(t, "Think of the city of lights.", resp.Hint)
	})

	t.Run("異常系: モデルの失敗は ErrUpstream", func(t *testing.T) {
		completer := aimocks.NewCompleter(t)
		completer.On("Complete", mock.Anything, mock.Anything, 150).Return("", &ai.StatusError{StatusCode: 500}).Once()

		resp, err := NewTutorService(completer, testAIConfig).Hint(ctx, tutorCard)
		assert.ErrorIs(t, err, model.ErrUpstream)
		assert.Nil(t, resp)
	})

	t.Run("異常系: 空の応答", func(t *testing.T) {
		completer := aimocks.NewCompleter(t)
		completer.On("Complete", mock.Anything, mock.Anything, 150).Return("   ", nil).Once()

		_, err := NewTutorService(completer, testAIConfig).Hint(ctx, tutorCard)
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}

func Test_tutorService_Explain(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系", func(t *testing.T) {
		completer := aimocks.NewCompleter(t)
		completer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Student's Answer: Lyon") && strings.Contains(p, "Correct Answer: Paris")
		}), 200).Return("Paris is the capital; Lyon is the third-largest city.", nil).Once()

		resp := NewTutorService(completer, testAIConfig).Explain(ctx, tutorCard, "Lyon")
		assert.True(t, resp.AIGenerated)
		assert.Equal(t, "Paris is the capital; Lyon is the third-largest city.", resp.Explanation)
	})

	t.Run("失敗時は定型文", func(t *testing.T) {
		completer := aimocks.NewCompleter(t)
		completer.On("Complete", mock.Anything, mock.Anything, 200).Return("", errors.New("timeout")).Once()

		resp := NewTutorService(completer, testAIConfig).Explain(ctx, tutorCard, "Lyon")
		assert.False(t, resp.AIGenerated)
		assert.Equal(t, FallbackExplanation, resp.Explanation)
	})
}
