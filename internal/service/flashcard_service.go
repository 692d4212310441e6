//go:generate mockery --name FlashcardService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/repository"
	"go_flashcard_study/internal/study"

	"gorm.io/gorm"
)

type FlashcardService interface {
	CreateFlashcard(ctx context.Context, req *model.CreateFlashcardRequest) (*model.FlashcardResponse, error)
	GetFlashcard(ctx context.Context, id uint) (*model.FlashcardResponse, error)
	ListFlashcards(ctx context.Context, filter model.FlashcardFilter) ([]*model.FlashcardResponse, error)
	UpdateFlashcard(ctx context.Context, id uint, req *model.UpdateFlashcardRequest) (*model.FlashcardResponse, error)
	DeleteFlashcard(ctx context.Context, id uint) error
}

type flashcardService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
}

func NewFlashcardService(db *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository) FlashcardService {
	return &flashcardService{
		db:       db,
		cardRepo: cardRepo,
		progRepo: progRepo,
	}
}

// CreateFlashcard はカードとカウンタ0の進捗を同一トランザクションで作成します。
func (s *flashcardService) CreateFlashcard(ctx context.Context, req *model.CreateFlashcardRequest) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("subject", req.Subject)

	card := &model.Flashcard{
		Subject: req.Subject,
		Front:   req.Front,
		Back:    req.Back,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createWithProgress(ctx, tx, s.cardRepo, s.progRepo, card)
	})
	if err != nil {
		logger.Error("Failed to create flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create flashcard.", "", model.ErrInternalServer)
	}

	logger.Info("Flashcard created", "flashcard_id", card.ID)
	return model.NewFlashcardResponse(card), nil
}

func (s *flashcardService) GetFlashcard(ctx context.Context, id uint) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", id)

	card, err := s.cardRepo.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Flashcard not found")
			return nil, model.NewAppError("NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to get flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get flashcard.", "", model.ErrInternalServer)
	}
	return model.NewFlashcardResponse(card), nil
}

func (s *flashcardService) ListFlashcards(ctx context.Context, filter model.FlashcardFilter) ([]*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	cards, err := s.cardRepo.List(ctx, s.db, filter)
	if err != nil {
		logger.Error("Failed to list flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list flashcards.", "", model.ErrInternalServer)
	}

	responses := make([]*model.FlashcardResponse, len(cards))
	for i, card := range cards {
		responses[i] = model.NewFlashcardResponse(card)
	}
	logger.Debug("Listed flashcards", "count", len(responses), "subject", filter.Subject, "search", filter.Search)
	return responses, nil
}

// UpdateFlashcard は指定されたフィールドだけを更新します。何も指定が無ければ現在の値を返します。
func (s *flashcardService) UpdateFlashcard(ctx context.Context, id uint, req *model.UpdateFlashcardRequest) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", id)

	updates := map[string]interface{}{}
	if req.Subject != nil {
		updates["subject"] = *req.Subject
	}
	if req.Front != nil {
		updates["front"] = *req.Front
	}
	if req.Back != nil {
		updates["back"] = *req.Back
	}

	var updated *model.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := s.cardRepo.Update(ctx, tx, id, updates); err != nil {
				return err
			}
		}
		card, err := s.cardRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = card
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Flashcard to update not found")
			return nil, model.NewAppError("NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to update flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update flashcard.", "", model.ErrInternalServer)
	}

	logger.Info("Flashcard updated", "fields", len(updates))
	return model.NewFlashcardResponse(updated), nil
}

// DeleteFlashcard は進捗も合わせて削除します。外部キーが無効な SQLite でも残らないよう明示的に消します。
func (s *flashcardService) DeleteFlashcard(ctx context.Context, id uint) error {
	logger := middleware.GetLogger(ctx).With("flashcard_id", id)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progRepo.DeleteByFlashcardID(ctx, tx, id); err != nil {
			return err
		}
		return s.cardRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Flashcard to delete not found")
			return model.NewAppError("NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete flashcard", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete flashcard.", "", model.ErrInternalServer)
	}

	logger.Info("Flashcard deleted")
	return nil
}

func createWithProgress(ctx context.Context, tx *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository, card *model.Flashcard) error {
	if err := cardRepo.Create(ctx, tx, card); err != nil {
		return err
	}
	progress := study.NewProgress(card.ID)
	if err := progRepo.Create(ctx, tx, progress); err != nil {
		return err
	}
	card.Progress = progress
	return nil
}
