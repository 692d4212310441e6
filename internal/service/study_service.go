//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/repository"
	"go_flashcard_study/internal/study"

	"gorm.io/gorm"
)

type StudyService interface {
	GetStudySession(ctx context.Context, subject string, optimize bool) (*model.StudyOrderResponse, error)
	OptimizeOrder(ctx context.Context, cards []model.StudyCardInput) *model.StudyOrderResponse
	RecordAttempt(ctx context.Context, flashcardID uint, correct bool) (*model.ProgressResponse, error)
	ListProgress(ctx context.Context) ([]*model.ProgressResponse, error)
}

type studyService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
	orderer  study.Orderer
	now      func() time.Time
}

func NewStudyService(db *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository, orderer study.Orderer) StudyService {
	return &studyService{
		db:       db,
		cardRepo: cardRepo,
		progRepo: progRepo,
		orderer:  orderer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetStudySession は保存済みのカードから学習順を組み立てます。
// optimize が false の場合はモデルを呼ばず既定順を返します。
func (s *studyService) GetStudySession(ctx context.Context, subject string, optimize bool) (*model.StudyOrderResponse, error) {
	logger := middleware.GetLogger(ctx).With("subject", subject, "optimize", optimize)

	cards, err := s.cardRepo.List(ctx, s.db, model.FlashcardFilter{Subject: subject})
	if err != nil {
		logger.Error("Failed to load flashcards for study session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcards.", "", model.ErrInternalServer)
	}

	snapshots := make([]model.StudyCard, len(cards))
	for i, card := range cards {
		snapshots[i] = study.NewStudyCard(card)
	}

	var order study.Order
	if optimize {
		order = s.orderer.Order(ctx, snapshots)
	} else {
		order = study.Order{Cards: study.RankFallback(snapshots)}
	}

	logger.Info("Study session prepared", "cards", len(snapshots), "length", len(order.Cards), "ai_optimized", order.AIOptimized)
	return newStudyOrderResponse(order), nil
}

// OptimizeOrder はクライアントが送った統計で学習順を決めます。失敗しても既定順を返すのでエラーはありません。
func (s *studyService) OptimizeOrder(ctx context.Context, inputs []model.StudyCardInput) *model.StudyOrderResponse {
	snapshots := make([]model.StudyCard, len(inputs))
	for i, in := range inputs {
		snapshots[i] = study.StudyCardFromInput(in)
	}
	return newStudyOrderResponse(s.orderer.Order(ctx, snapshots))
}

// RecordAttempt は回答1回分を記録します。進捗が未作成なら作成し、
// 作成か更新のどちらか1回だけ書き込みます。同じ呼び出しを繰り返すとその回数分記録されます。
func (s *studyService) RecordAttempt(ctx context.Context, flashcardID uint, correct bool) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", flashcardID, "correct", correct)

	var progress *model.Progress
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.cardRepo.Exists(ctx, tx, flashcardID)
		if err != nil {
			logger.Error("Error checking flashcard before recording attempt", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record attempt.", "", model.ErrInternalServer)
		}
		if !exists {
			logger.Warn("Attempt recorded for unknown flashcard")
			return model.NewAppError("NOT_FOUND", "Flashcard not found.", "flashcard_id", model.ErrNotFound)
		}

		progress, err = s.progRepo.FindByFlashcardID(ctx, tx, flashcardID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Error finding progress in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record attempt.", "", model.ErrInternalServer)
			}
			logger.Info("Progress not found, materializing zeroed progress")
			progress = study.NewProgress(flashcardID)
			created = true
		}

		study.ApplyAttempt(progress, correct, s.now())

		if created {
			err = s.progRepo.Create(ctx, tx, progress)
		} else {
			err = s.progRepo.Update(ctx, tx, progress)
		}
		if errors.Is(err, model.ErrConflict) {
			// 同じカードへの初回回答が並行して記録された
			return model.NewAppError("CONFLICT", "Progress was modified concurrently. Please retry.", "flashcard_id", model.ErrConflict)
		}
		if err != nil {
			logger.Error("Error persisting progress", "error", err, "created", created)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record attempt.", "", model.ErrInternalServer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Attempt recorded", "times_seen", progress.TimesSeen, "times_wrong", progress.TimesWrong, "created", created)
	resp := newProgressResponse(progress)
	resp.Created = created
	return resp, nil
}

func (s *studyService) ListProgress(ctx context.Context) ([]*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	progresses, err := s.progRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list progress.", "", model.ErrInternalServer)
	}

	responses := make([]*model.ProgressResponse, len(progresses))
	for i, p := range progresses {
		responses[i] = newProgressResponse(p)
	}
	return responses, nil
}

func newProgressResponse(p *model.Progress) *model.ProgressResponse {
	return &model.ProgressResponse{
		FlashcardID:  p.FlashcardID,
		TimesSeen:    p.TimesSeen,
		TimesWrong:   p.TimesWrong,
		LastSeen:     p.LastSeen,
		AccuracyRate: study.RoundAccuracy(study.Accuracy(p.TimesSeen, p.TimesWrong)),
	}
}

func newStudyOrderResponse(order study.Order) *model.StudyOrderResponse {
	cards := order.Cards
	if cards == nil {
		cards = []model.StudyCard{}
	}
	return &model.StudyOrderResponse{
		Cards:       cards,
		Order:       study.IDs(cards),
		AIOptimized: order.AIOptimized,
		Message:     order.Message,
	}
}
