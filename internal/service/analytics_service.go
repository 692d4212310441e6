//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sort"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/repository"
	"go_flashcard_study/internal/study"

	"gorm.io/gorm"
)

// 習得済みとみなす条件
const (
	masteredMinSeen     = 3
	masteredMinAccuracy = 90.0
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*model.AnalyticsResponse, error)
}

type analyticsService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
}

func NewAnalyticsService(db *gorm.DB, cardRepo repository.FlashcardRepository) AnalyticsService {
	return &analyticsService{
		db:       db,
		cardRepo: cardRepo,
	}
}

type subjectTotals struct {
	cards int
	seen  int
	wrong int
}

func (s *analyticsService) GetAnalytics(ctx context.Context) (*model.AnalyticsResponse, error) {
	logger := middleware.GetLogger(ctx)

	cards, err := s.cardRepo.List(ctx, s.db, model.FlashcardFilter{})
	if err != nil {
		logger.Error("Failed to load flashcards for analytics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to compute analytics.", "", model.ErrInternalServer)
	}

	resp := &model.AnalyticsResponse{
		TotalCards:       len(cards),
		SubjectBreakdown: []model.SubjectStat{},
	}
	totalWrong := 0
	bySubject := map[string]*subjectTotals{}

	for _, card := range cards {
		sc := study.NewStudyCard(card)

		totals, ok := bySubject[sc.Subject]
		if !ok {
			totals = &subjectTotals{}
			bySubject[sc.Subject] = totals
		}
		totals.cards++
		totals.seen += sc.TimesSeen
		totals.wrong += sc.TimesWrong

		if sc.TimesSeen == 0 {
			continue
		}
		resp.StudiedCards++
		resp.TotalAttempts += sc.TimesSeen
		totalWrong += sc.TimesWrong
		if sc.TimesSeen >= masteredMinSeen && study.Accuracy(sc.TimesSeen, sc.TimesWrong) >= masteredMinAccuracy {
			resp.CardsMastered++
		}
	}
	resp.AverageAccuracy = study.RoundAccuracy(study.Accuracy(resp.TotalAttempts, totalWrong))

	for subject, totals := range bySubject {
		resp.SubjectBreakdown = append(resp.SubjectBreakdown, model.SubjectStat{
			Subject:   subject,
			CardCount: totals.cards,
			Accuracy:  study.RoundAccuracy(study.Accuracy(totals.seen, totals.wrong)),
		})
	}
	sort.Slice(resp.SubjectBreakdown, func(i, j int) bool {
		return resp.SubjectBreakdown[i].Subject < resp.SubjectBreakdown[j].Subject
	})

	logger.Debug("Analytics computed", "total_cards", resp.TotalCards, "studied_cards", resp.StudiedCards)
	return resp, nil
}
