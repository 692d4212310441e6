//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	FindByFlashcardID(ctx context.Context, db *gorm.DB, flashcardID uint) (*model.Progress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	DeleteByFlashcardID(ctx context.Context, tx *gorm.DB, flashcardID uint) error
	List(ctx context.Context, db *gorm.DB) ([]*model.Progress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// Create は INSERT のみを行います。ProgressID は呼び出し側で採番済みの想定。
// 同じカードの進捗が既にある場合 (PostgreSQL の一意制約違反) は model.ErrConflict を返します。
func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Create(progress).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create progress", "error", err, "flashcard_id", progress.FlashcardID)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", err, "flashcard_id", progress.FlashcardID)
		return fmt.Errorf("gormProgressRepository.Create: %w", err)
	}
	return nil
}

// FindByFlashcardID はレコードが無ければ model.ErrNotFound を返します。
func (r *gormProgressRepository) FindByFlashcardID(ctx context.Context, db *gorm.DB, flashcardID uint) (*model.Progress, error) {
	var progress model.Progress
	result := db.WithContext(ctx).Where("flashcard_id = ?", flashcardID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress in DB", "error", result.Error, "flashcard_id", flashcardID)
		return nil, fmt.Errorf("gormProgressRepository.FindByFlashcardID: %w", result.Error)
	}
	return &progress, nil
}

// Update は主キーで全カラムを上書きします。存在確認は呼び出し側で済ませておくこと。
func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	if err := tx.WithContext(ctx).Save(progress).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating progress in DB", "error", err, "flashcard_id", progress.FlashcardID)
		return fmt.Errorf("gormProgressRepository.Update: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) DeleteByFlashcardID(ctx context.Context, tx *gorm.DB, flashcardID uint) error {
	if err := tx.WithContext(ctx).Where("flashcard_id = ?", flashcardID).Delete(&model.Progress{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting progress in DB", "error", err, "flashcard_id", flashcardID)
		return fmt.Errorf("gormProgressRepository.DeleteByFlashcardID: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Progress, error) {
	var progresses []*model.Progress
	if err := db.WithContext(ctx).Order("flashcard_id ASC").Find(&progresses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing progress in DB", "error", err)
		return nil, fmt.Errorf("gormProgressRepository.List: %w", err)
	}
	return progresses, nil
}
