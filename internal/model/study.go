// internal/model/study.go
package model

import "time"

// StudyCard は並び順決定のためにリクエスト毎に組み立てるスナップショットです。永続化しません。
type StudyCard struct {
	ID           uint       `json:"id"`
	Subject      string     `json:"subject"`
	Front        string     `json:"front"`
	Back         string     `json:"back,omitempty"`
	TimesSeen    int        `json:"times_seen"`
	TimesWrong   int        `json:"times_wrong"`
	AccuracyRate float64    `json:"accuracy_rate"`
	LastSeen     *time.Time `json:"last_seen"`
}

// StudyCardInput はクライアントが統計付きで送ってくるカード1枚分
type StudyCardInput struct {
	ID         uint       `json:"id" validate:"required"`
	Subject    string     `json:"subject" validate:"required"`
	Front      string     `json:"front" validate:"required"`
	Back       string     `json:"back,omitempty"`
	TimesSeen  *int       `json:"times_seen" validate:"required,min=0"`
	TimesWrong *int       `json:"times_wrong" validate:"required,min=0"`
	LastSeen   *time.Time `json:"last_seen"`
}

// OptimizeOrderRequest は並び順最適化リクエストのDTO
type OptimizeOrderRequest struct {
	Flashcards []StudyCardInput `json:"flashcards" validate:"required,min=1,dive"`
}

// StudyOrderResponse は学習順のレスポンスDTO。Order は重複を含み得る (AI経由時のみ)。
type StudyOrderResponse struct {
	Cards       []StudyCard `json:"data"`
	Order       []uint      `json:"order"`
	AIOptimized bool        `json:"ai_optimized"`
	Message     string      `json:"message,omitempty"`
}

// TutorCard はヒント/解説生成に渡すカード内容
type TutorCard struct {
	Front   string `json:"front" validate:"required"`
	Back    string `json:"back" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

type HintRequest struct {
	Flashcard *TutorCard `json:"flashcard" validate:"required"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

type ExplainRequest struct {
	Flashcard  *TutorCard `json:"flashcard" validate:"required"`
	UserAnswer string     `json:"user_answer" validate:"required"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
	AIGenerated bool   `json:"ai_generated"`
}
