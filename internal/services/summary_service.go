package services

import (
	"context"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"roamio/pkg/cache"
	"roamio/pkg/utils"
)

const summaryCacheTTL = 24 * time.Hour

type SummaryServiceInterface interface {
	DestinationSummary(ctx context.Context, location string) (string, error)
}

type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type SummaryService struct {
	ai    ChatCompletionClient
	store cache.Store
}

func NewSummaryService(ai ChatCompletionClient, store cache.Store) SummaryServiceInterface {
	return &SummaryService{
		ai:    ai,
		store: store,
	}
}

func (s *SummaryService) DestinationSummary(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", utils.ErrLocationRequired
	}

	key := "summary:v1:" + strings.ToLower(location)
	if payload, ok := s.store.Get(ctx, key); ok {
		return string(payload), nil
	}

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a travel writer. Reply with a single short paragraph, " +
					"no lists, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Write a two-sentence introduction for travelers visiting " + location + ".",
			},
		},
		MaxTokens: 120,
	})
	if err != nil {
		log.Printf("Destination summary error for %s: %v", location, err)
		return "", utils.ErrSummaryUnavailable
	}
	if len(resp.Choices) == 0 {
		return "", utils.ErrSummaryUnavailable
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.store.Set(ctx, key, []byte(summary), summaryCacheTTL)

	return summary, nil
}
