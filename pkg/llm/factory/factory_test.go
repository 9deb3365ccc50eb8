package factory

import (
	"testing"

	"soulful-home-be/pkg/llm/gemini"
	"soulful-home-be/pkg/llm/ollama"
	"soulful-home-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider("openai", "gpt-4o-mini", "", "sk-test")
	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, p)

	p, err = NewLLMProvider("ollama", "llama3", "", "")
	require.NoError(t, err)
	require.IsType(t, &ollama.OllamaProvider{}, p)
	assert.Equal(t, "http://localhost:11434", p.(*ollama.OllamaProvider).BaseURL)

	_, err = NewLLMProvider("openai", "gpt-4o-mini", "", "")
	assert.Error(t, err)

	p, err = NewLLMProvider("gemini", "", "", "g-key")
	require.NoError(t, err)
	assert.IsType(t, &gemini.GeminiProvider{}, p)

	_, err = NewLLMProvider("gemini", "", "", "")
	assert.Error(t, err)

	_, err = NewLLMProvider("bard", "", "", "")
	assert.EqualError(t, err, "unsupported LLM provider: bard")
}
