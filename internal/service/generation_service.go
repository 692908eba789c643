package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/influenceos/agent-api/internal/llm"
	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/trends"
)

const systemPrompt = "You are an expert LinkedIn content strategist. Your task is to write an insightful, " +
	"engaging post based on a user's profile and recent industry trends provided to you. " +
	"Your output must be ONLY the text of the LinkedIn post and nothing else."

// ChatClient is the chat-completion capability used for generation;
// llm.Client is the production implementation.
type ChatClient interface {
	Chat(ctx context.Context, req llm.ChatRequest) (string, error)
}

type GenerationService interface {
	GeneratePost(ctx context.Context, user *models.User, industry string) (string, error)
}

type generationService struct {
	llm    ChatClient
	trends trends.Searcher
}

func NewGenerationService(chat ChatClient, searcher trends.Searcher) GenerationService {
	return &generationService{
		llm:    chat,
		trends: searcher,
	}
}

// GeneratePost researches trends for the industry first and then asks the
// model for the post text. Trend research is best-effort; a failed chat
// completion is an error, a post with no content is not useful output.
func (s *generationService) GeneratePost(ctx context.Context, user *models.User, industry string) (string, error) {
	trendsSummary := s.trends.TrendSummary(ctx, industry)

	userPrompt := fmt.Sprintf(
		"USER PROFILE DATA:\n"+
			"Name: %s %s\n\n"+
			"RECENT INDUSTRY TRENDS for '%s':\n%s\n\n"+
			"POST INSTRUCTIONS:\n"+
			"Write a short, insightful post in the first person that connects the user's perspective "+
			"with one or more of the recent trends. End with an engaging question for the audience.\n\n"+
			"LINKEDIN POST TEXT:",
		user.FirstName, user.LastName, industry, trendsSummary,
	)

	content, err := s.llm.Chat(ctx, llm.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  0.7,
		MaxTokens:    768,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", models.NewGenerationError(err)
	}
	if content == "" {
		return "", models.NewGenerationError(errors.New("model returned empty post text"))
	}

	return content, nil
}
