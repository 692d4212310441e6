// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Progress はカード1枚ごとの学習カウンタです (Flashcard と1対1)。
// 不変条件: TimesWrong <= TimesSeen。LastSeen が nil なのは未学習(TimesSeen == 0)の場合のみ。
type Progress struct {
	ProgressID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	FlashcardID uint       `gorm:"not null;uniqueIndex" json:"flashcard_id"`
	TimesSeen   int        `gorm:"not null;default:0" json:"times_seen"`
	TimesWrong  int        `gorm:"not null;default:0;check:chk_progress_wrong_le_seen,times_wrong <= times_seen" json:"times_wrong"`
	LastSeen    *time.Time `json:"last_seen"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Progress) TableName() string {
	return "flashcard_progresses"
}

// RecordAttemptRequest は回答結果送信リクエストのDTO
type RecordAttemptRequest struct {
	FlashcardID *uint `json:"flashcard_id" validate:"required"`
	Correct     *bool `json:"correct" validate:"required"`
}

// ProgressResponse は進捗と派生値(正答率)のレスポンスDTO
type ProgressResponse struct {
	FlashcardID  uint       `json:"flashcard_id"`
	TimesSeen    int        `json:"times_seen"`
	TimesWrong   int        `json:"times_wrong"`
	LastSeen     *time.Time `json:"last_seen"`
	AccuracyRate float64    `json:"accuracy_rate"`
	Created      bool       `json:"created,omitempty"` // この回答で進捗レコードが新規作成された
}
