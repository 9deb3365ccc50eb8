package factory

import (
	"fmt"

	"soulful-home-be/pkg/llm"
	"soulful-home-be/pkg/llm/gemini"
	"soulful-home-be/pkg/llm/ollama"
	"soulful-home-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai", "":
		if apiKey == "" && baseURL == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY or LLM_BASE_URL")
		}
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
