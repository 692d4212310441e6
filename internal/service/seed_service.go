package service

import (
	"context"
	"fmt"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/repository"

	"gorm.io/gorm"
)

// SampleDeck は初期投入用のカード
var SampleDeck = []model.CreateFlashcardRequest{
	{Subject: "Mathematics", Front: "What is the derivative of x²?", Back: "2x"},
	{Subject: "Mathematics", Front: "What is the integral of 2x?", Back: "x² + C"},
	{Subject: "Physics", Front: "What is Newton's second law?", Back: "F = ma (Force equals mass times acceleration)"},
	{Subject: "Chemistry", Front: "What is the chemical formula for water?", Back: "H₂O"},
	{Subject: "Programming", Front: "What does API stand for?", Back: "Application Programming Interface"},
	{Subject: "Biology", Front: "What is the powerhouse of the cell?", Back: "Mitochondria"},
	{Subject: "History", Front: "In what year did World War II end?", Back: "1945"},
	{Subject: "Geography", Front: "What is the capital of France?", Back: "Paris"},
}

type SeedService interface {
	Seed(ctx context.Context, deck []model.CreateFlashcardRequest) (int, error)
}

type seedService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
}

func NewSeedService(db *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository) SeedService {
	return &seedService{
		db:       db,
		cardRepo: cardRepo,
		progRepo: progRepo,
	}
}

// Seed は front が未登録のカードだけを進捗付きで追加し、追加した枚数を返します。何度実行しても重複しません。
func (s *seedService) Seed(ctx context.Context, deck []model.CreateFlashcardRequest) (int, error) {
	logger := middleware.GetLogger(ctx)
	created := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range deck {
			exists, err := s.cardRepo.ExistsByFront(ctx, tx, item.Front)
			if err != nil {
				return err
			}
			if exists {
				logger.Debug("Sample card already present, skipping", "front", item.Front)
				continue
			}
			card := &model.Flashcard{Subject: item.Subject, Front: item.Front, Back: item.Back}
			if err := createWithProgress(ctx, tx, s.cardRepo, s.progRepo, card); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("service.Seed: %w", err)
	}

	logger.Info("Sample deck seeded", "created", created, "deck_size", len(deck))
	return created, nil
}
