//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"

	"gorm.io/gorm"
)

// FlashcardRepository はカード本体の永続化を担います。DB接続はService層から渡します。
type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Flashcard, error)
	List(ctx context.Context, db *gorm.DB, filter model.FlashcardFilter) ([]*model.Flashcard, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	Exists(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	ExistsByFront(ctx context.Context, db *gorm.DB, front string) (bool, error)
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Omit("Progress").Create(card).Error; err != nil {
		logger.Error("Error creating flashcard in DB", "error", err, "subject", card.Subject)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", err)
	}
	return nil
}

// FindByID は進捗をPreloadして返します。
func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Preload("Progress").First(&card, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB", "error", result.Error, "flashcard_id", id)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// List はID昇順で返します。Subject が "all" の場合は絞り込みません。
func (r *gormFlashcardRepository) List(ctx context.Context, db *gorm.DB, filter model.FlashcardFilter) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Preload("Progress")

	if filter.Subject != "" && filter.Subject != "all" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(front) LIKE ? OR LOWER(back) LIKE ?)", pattern, pattern)
	}

	var cards []*model.Flashcard
	if err := query.Order("id ASC").Find(&cards).Error; err != nil {
		logger.Error("Error listing flashcards in DB", "error", err, "subject", filter.Subject)
		return nil, fmt.Errorf("gormFlashcardRepository.List: %w", err)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Flashcard{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating flashcard in DB", "error", result.Error, "flashcard_id", id)
		return fmt.Errorf("gormFlashcardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Flashcard{}, id)
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB", "error", result.Error, "flashcard_id", id)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) Exists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Flashcard{}).Where("id = ?", id).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error checking flashcard existence", "error", err, "flashcard_id", id)
		return false, fmt.Errorf("gormFlashcardRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *gormFlashcardRepository) ExistsByFront(ctx context.Context, db *gorm.DB, front string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Flashcard{}).Where("front = ?", front).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error checking flashcard front existence", "error", err)
		return false, fmt.Errorf("gormFlashcardRepository.ExistsByFront: %w", err)
	}
	return count > 0, nil
}
