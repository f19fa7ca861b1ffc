package llmfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"aarav/pkg/utils"
)

var Module = fx.Provide(provideChatClient)

// provideChatClient picks the generation backend from LLM_PROVIDER:
// "gemini" uses the Google API, anything else goes through the
// OpenAI-compatible client (covers OpenAI itself and Ollama via
// LLM_BASE_URL).
func provideChatClient() utils.ChatClientInterface {
	switch os.Getenv("LLM_PROVIDER") {
	case "gemini":
		client, err := utils.NewGeminiChatClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("LLM_MODEL"))
		if err != nil {
			log.Fatalf("Failed to init gemini client: %v", err)
		}
		return client
	default:
		return utils.NewOpenAIChatClient(
			os.Getenv("OPENAI_API_KEY"),
			os.Getenv("LLM_BASE_URL"),
			os.Getenv("LLM_MODEL"))
	}
}
