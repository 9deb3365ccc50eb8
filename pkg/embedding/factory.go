package embedding

import "fmt"

type Options struct {
	Provider      string // "openai" | "ollama" | "gemini"
	Model         string
	OpenAIKey     string
	OpenAIBaseURL string
	OllamaBaseURL string
	GeminiKey     string
	CacheSize     int
}

// NewProvider builds the configured backend wrapped in an LRU cache.
func NewProvider(opts Options) (EmbeddingProvider, error) {
	var base EmbeddingProvider
	switch opts.Provider {
	case "openai", "":
		if opts.OpenAIKey == "" {
			return nil, fmt.Errorf("openai embeddings require OPENAI_API_KEY")
		}
		base = NewOpenAIProvider(opts.OpenAIKey, opts.OpenAIBaseURL, opts.Model)
	case "ollama":
		base = NewOllamaProvider(opts.OllamaBaseURL, opts.Model)
	case "gemini":
		if opts.GeminiKey == "" {
			return nil, fmt.Errorf("gemini embeddings require GOOGLE_GEMINI_API_KEY")
		}
		base = NewGeminiProvider(opts.GeminiKey)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", opts.Provider)
	}
	return NewCachedProvider(base, opts.CacheSize)
}
