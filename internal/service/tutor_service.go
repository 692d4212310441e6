//go:generate mockery --name TutorService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"strings"

	"go_flashcard_study/internal/ai"
	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
)

// FallbackExplanation はモデルが使えないときに返す解説文
const FallbackExplanation = "The correct answer helps you understand the fundamental concept. Review the key principles and try to connect them to similar problems."

const hintPromptTemplate = `You are an AI tutor. A student is struggling with this flashcard:

Question: %s
Answer: %s
Subject: %s

Provide a helpful hint that guides the student toward the answer without giving it away completely. The hint should:
1. Be encouraging and supportive
2. Provide a conceptual clue or memory aid
3. Not reveal the full answer
4. Be concise (1-2 sentences)

Return only the hint text, nothing else.`

const explainPromptTemplate = `You are an AI tutor. A student answered a flashcard question incorrectly:

Question: %s
Correct Answer: %s
Student's Answer: %s
Subject: %s

Provide a clear, educational explanation that:
1. Explains why the correct answer is right
2. Identifies what might have led to the student's mistake
3. Provides additional context or examples
4. Is encouraging and constructive
5. Helps prevent similar mistakes in the future

Keep it concise but informative (2-3 sentences).`

type TutorService interface {
	Hint(ctx context.Context, card model.TutorCard) (*model.HintResponse, error)
	Explain(ctx context.Context, card model.TutorCard, userAnswer string) *model.ExplainResponse
}

type tutorService struct {
	completer ai.Completer
	cfg       config.AIConfig
}

func NewTutorService(completer ai.Completer, cfg config.AIConfig) TutorService {
	return &tutorService{
		completer: completer,
		cfg:       cfg,
	}
}

// Hint はモデルにヒントを生成させます。失敗時は 502 相当のエラーを返します。
func (s *tutorService) Hint(ctx context.Context, card model.TutorCard) (*model.HintResponse, error) {
	logger := middleware.GetLogger(ctx).With("subject", card.Subject)

	prompt := fmt.Sprintf(hintPromptTemplate, card.Front, card.Back, card.Subject)
	text, err := s.complete(ctx, prompt, s.cfg.HintMaxTokens)
	if err != nil {
		logger.Warn("Failed to generate hint", "error", err)
		return nil, model.NewAppError("AI_UNAVAILABLE", "Failed to generate hint.", "", model.ErrUpstream)
	}
	return &model.HintResponse{Hint: text}, nil
}

// Explain は誤答の解説を生成します。失敗時は定型文を返し、AIGenerated を false にします。
func (s *tutorService) Explain(ctx context.Context, card model.TutorCard, userAnswer string) *model.ExplainResponse {
	logger := middleware.GetLogger(ctx).With("subject", card.Subject)

	prompt := fmt.Sprintf(explainPromptTemplate, card.Front, card.Back, userAnswer, card.Subject)
	text, err := s.complete(ctx, prompt, s.cfg.ExplainMaxTokens)
	if err != nil {
		logger.Warn("Failed to generate explanation, using canned text", "error", err)
		return &model.ExplainResponse{Explanation: FallbackExplanation}
	}
	return &model.ExplainResponse{Explanation: text, AIGenerated: true}
}

func (s *tutorService) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	text, err := s.completer.Complete(ctx, prompt, maxTokens)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ai.ErrMissingContent
	}
	return text, nil
}
