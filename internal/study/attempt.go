package study

import (
	"time"

	"go_flashcard_study/internal/model"

	"github.com/google/uuid"
)

// NewProgress はカウンタ0の未保存の進捗レコードを返します。
func NewProgress(flashcardID uint) *model.Progress {
	return &model.Progress{
		ProgressID:  uuid.New(),
		FlashcardID: flashcardID,
	}
}

// ApplyAttempt は回答1回分の結果を進捗に反映します。
// LastSeen は now が過去の値より前でも巻き戻しません。
func ApplyAttempt(p *model.Progress, correct bool, now time.Time) {
	p.TimesSeen++
	if !correct {
		p.TimesWrong++
	}
	if p.LastSeen == nil || now.After(*p.LastSeen) {
		t := now
		p.LastSeen = &t
	}
}
