// internal/model/flashcard.go
package model

import "time"

// Flashcard は科目・問題(front)・解答(back)からなる学習単位です。
type Flashcard struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Subject   string    `gorm:"type:varchar(255);not null;index" json:"subject"`
	Front     string    `gorm:"type:text;not null" json:"front"`
	Back      string    `gorm:"type:text;not null" json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 1対1。Flashcard削除時にProgressも削除される
	Progress *Progress `gorm:"foreignKey:FlashcardID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// FlashcardFilter は一覧取得時の絞り込み条件
type FlashcardFilter struct {
	Subject string // "" または "all" なら全科目
	Search  string // front / back の部分一致
}

// カード作成リクエストDTO
type CreateFlashcardRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Front   string `json:"front" validate:"required"`
	Back    string `json:"back" validate:"required"`
}

// カード更新（部分）リクエストDTO
type UpdateFlashcardRequest struct {
	Subject *string `json:"subject,omitempty" validate:"omitempty,min=1,max=255"`
	Front   *string `json:"front,omitempty" validate:"omitempty,min=1"`
	Back    *string `json:"back,omitempty" validate:"omitempty,min=1"`
}

// FlashcardResponse はカード本体に進捗カウンタを平坦化したレスポンスDTO
type FlashcardResponse struct {
	ID         uint       `json:"id"`
	Subject    string     `json:"subject"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	TimesSeen  int        `json:"times_seen"`
	TimesWrong int        `json:"times_wrong"`
	LastSeen   *time.Time `json:"last_seen"`
}

// NewFlashcardResponse は Progress が未作成のカードをカウンタ0として扱います。
func NewFlashcardResponse(f *Flashcard) *FlashcardResponse {
	resp := &FlashcardResponse{
		ID:        f.ID,
		Subject:   f.Subject,
		Front:     f.Front,
		Back:      f.Back,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Progress != nil {
		resp.TimesSeen = f.Progress.TimesSeen
		resp.TimesWrong = f.Progress.TimesWrong
		resp.LastSeen = f.Progress.LastSeen
	}
	return resp
}
