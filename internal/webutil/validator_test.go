package webutil

import (
	"errors"
	"testing"

	"go_flashcard_study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateRequest_StudyCardInput(t *testing.T) {
	card := func(seen, wrong *int) model.StudyCardInput {
		return model.StudyCardInput{ID: 1, Subject: "Math", Front: "2+2", TimesSeen: seen, TimesWrong: wrong}
	}

	tests := []struct {
		name      string
		req       model.OptimizeOrderRequest
		wantField string
		wantMsg   string
	}{
		{name: "同数は許可", req: model.OptimizeOrderRequest{Flashcards: []model.StudyCardInput{card(intPtr(2), intPtr(2))}}},
		{name: "未出題", req: model.OptimizeOrderRequest{Flashcards: []model.StudyCardInput{card(intPtr(0), intPtr(0))}}},
		{
			name:      "誤答数が出題数を超える",
			req:       model.OptimizeOrderRequest{Flashcards: []model.StudyCardInput{card(intPtr(1), intPtr(2))}},
			wantField: "flashcards[0].times_wrong",
			wantMsg:   "times_wrong must not exceed times_seen.",
		},
		{
			name:      "欠落は required が先に報告される",
			req:       model.OptimizeOrderRequest{Flashcards: []model.StudyCardInput{card(nil, intPtr(2))}},
			wantField: "flashcards[0].times_seen",
			wantMsg:   "times_seen is required.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *model.AppError
			require.True(t, errors.As(err, &appErr))
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Equal(t, tt.wantField, appErr.Detail.Field)
			assert.Equal(t, tt.wantMsg, appErr.Detail.Message)
		})
	}
}
