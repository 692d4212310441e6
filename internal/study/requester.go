package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_flashcard_study/internal/ai"
	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
)

// ErrMalformedOrder はモデルの応答が整数のJSON配列として解釈できないことを表します。
var ErrMalformedOrder = errors.New("study: model response is not a JSON array of ids")

const orderPromptTemplate = `You are an AI tutor helping optimize flashcard study sessions. Given the following flashcard statistics, determine the optimal order for studying to maximize learning retention.

Flashcard Statistics:
%s

Please consider:
1. Cards with lower accuracy rates should appear more frequently
2. Cards not seen recently should be prioritized
3. Distribute difficult cards throughout the session (don't cluster them)
4. Mix subjects to prevent fatigue

Return ONLY a JSON array of flashcard IDs in the optimal study order, like: [1, 3, 2, 4, 1, 3, ...]

Some cards may appear multiple times if they need extra practice.`

// promptCard はプロンプトに埋め込むカード統計。back は含めない。
type promptCard struct {
	ID           uint       `json:"id"`
	Subject      string     `json:"subject"`
	Front        string     `json:"front"`
	TimesSeen    int        `json:"times_seen"`
	TimesWrong   int        `json:"times_wrong"`
	AccuracyRate float64    `json:"accuracy_rate"`
	LastSeen     *time.Time `json:"last_seen"`
}

// Requester は言語モデルに学習順を問い合わせます。リトライやキャッシュは行いません。
type Requester struct {
	completer   ai.Completer
	maxTokens   int
	frontMaxLen int
}

func NewRequester(completer ai.Completer, maxTokens, frontMaxLen int) *Requester {
	return &Requester{
		completer:   completer,
		maxTokens:   maxTokens,
		frontMaxLen: frontMaxLen,
	}
}

// RequestOrder はモデルの返したID列を入力カードへ対応付けて返します。
// 入力に無いIDは黙って捨て、重複はそのまま残します。結果が空でもエラーにはしません。
func (r *Requester) RequestOrder(ctx context.Context, cards []model.StudyCard) ([]model.StudyCard, error) {
	logger := middleware.GetLogger(ctx)

	prompt, err := BuildOrderPrompt(cards, r.frontMaxLen)
	if err != nil {
		return nil, fmt.Errorf("study.RequestOrder: %w", err)
	}

	text, err := r.completer.Complete(ctx, prompt, r.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("study.RequestOrder: %w", err)
	}

	ids, err := ParseOrder(text)
	if err != nil {
		logger.Debug("Unparsable order response", "response", text)
		return nil, fmt.Errorf("study.RequestOrder: %w", err)
	}

	ordered, dropped := MapOrder(ids, cards)
	if dropped > 0 {
		logger.Info("Dropped unknown ids from model order", "dropped", dropped, "kept", len(ordered))
	}
	return ordered, nil
}

// BuildOrderPrompt はカード統計を整形済みJSONとして埋め込んだプロンプトを返します。
func BuildOrderPrompt(cards []model.StudyCard, frontMaxLen int) (string, error) {
	items := make([]promptCard, len(cards))
	for i, c := range cards {
		items[i] = promptCard{
			ID:           c.ID,
			Subject:      c.Subject,
			Front:        truncateRunes(c.Front, frontMaxLen),
			TimesSeen:    c.TimesSeen,
			TimesWrong:   c.TimesWrong,
			AccuracyRate: Accuracy(c.TimesSeen, c.TimesWrong),
			LastSeen:     c.LastSeen,
		}
	}
	stats, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(orderPromptTemplate, stats), nil
}

// ParseOrder は前後の空白を除いた応答全体を整数のJSON配列として解釈します。
// 説明文やコードフェンスが付いた応答は受け付けません。
func ParseOrder(text string) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOrder, err)
	}
	return ids, nil
}

// MapOrder はID列を入力カードに対応付け、対応の無かった件数も返します。
// 同じIDのカードが入力に複数ある場合は先頭のものを使います。
func MapOrder(ids []int64, cards []model.StudyCard) ([]model.StudyCard, int) {
	byID := make(map[uint]model.StudyCard, len(cards))
	for _, c := range cards {
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}

	ordered := make([]model.StudyCard, 0, len(ids))
	dropped := 0
	for _, id := range ids {
		if id < 0 {
			dropped++
			continue
		}
		c, ok := byID[uint(id)]
		if !ok {
			dropped++
			continue
		}
		ordered = append(ordered, c)
	}
	return ordered, dropped
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
