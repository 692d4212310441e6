//go:generate mockery --name Orderer --output ./mocks --outpkg mocks --case=underscore
package study

import (
	"context"
	"errors"
	"time"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
)

// FallbackMessage は既定の並び順に切り替えたときにクライアントへ返す案内文
const FallbackMessage = "AI optimization failed, using default order."

// ErrEmptyOrder はモデルの応答から1枚もカードが対応付かなかったことを表します。
var ErrEmptyOrder = errors.New("study: model order resolved to no cards")

// Order は1回分の学習順。AIOptimized が true のときだけ Cards に重複があり得ます。
type Order struct {
	Cards       []model.StudyCard
	AIOptimized bool
	Message     string
}

func (o Order) IDs() []uint {
	return IDs(o.Cards)
}

// OrderRequester はリモートのモデルに学習順を問い合わせる部分です。
type OrderRequester interface {
	RequestOrder(ctx context.Context, cards []model.StudyCard) ([]model.StudyCard, error)
}

// Orderer は常に使える学習順を返します。
type Orderer interface {
	Order(ctx context.Context, cards []model.StudyCard) Order
}

// Orchestrator はモデルへの問い合わせを1回だけ試み、失敗したら RankFallback に切り替えます。
type Orchestrator struct {
	requester OrderRequester
	timeout   time.Duration
}

func NewOrchestrator(requester OrderRequester, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		requester: requester,
		timeout:   timeout,
	}
}

// Order はエラーを返しません。問い合わせの失敗は WARN ログに残し、既定順を返します。
func (o *Orchestrator) Order(ctx context.Context, cards []model.StudyCard) Order {
	logger := middleware.GetLogger(ctx).With("cards", len(cards))

	if len(cards) == 0 {
		return Order{Cards: []model.StudyCard{}}
	}

	ordered, err := o.request(ctx, cards)
	if err != nil {
		logger.Warn("AI study order failed, falling back to default ranking", "error", err)
		return Order{
			Cards:   RankFallback(cards),
			Message: FallbackMessage,
		}
	}

	logger.Info("AI study order resolved", "length", len(ordered))
	return Order{Cards: ordered, AIOptimized: true}
}

func (o *Orchestrator) request(ctx context.Context, cards []model.StudyCard) ([]model.StudyCard, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	ordered, err := o.requester.RequestOrder(ctx, cards)
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return nil, ErrEmptyOrder
	}
	return ordered, nil
}
