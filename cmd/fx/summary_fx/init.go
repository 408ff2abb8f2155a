package summary_fx

import (
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"roamio/internal/services"
	"roamio/pkg/cache"
)

var Module = fx.Provide(
	provideChatClient, provideSummaryService)

func provideChatClient() services.ChatCompletionClient {
	return openai.NewClient(os.Getenv("OPENAI_API_KEY"))
}

func provideSummaryService(ai services.ChatCompletionClient, store cache.Store) services.SummaryServiceInterface {
	return services.NewSummaryService(ai, store)
}
