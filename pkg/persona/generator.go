// Package persona turns a finished quiz run into a persona report using a
// chat model.
package persona

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonrepair"

	"soulful-home-be/internal/constant"
	"soulful-home-be/internal/entity"
	"soulful-home-be/pkg/llm"
	"soulful-home-be/pkg/prompt"
)

var ErrInvalidReply = errors.New("persona reply is not a valid report")

type Generator struct {
	llm      llm.LLMProvider
	validate *validator.Validate
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{llm: provider, validate: validator.New()}
}

func (g *Generator) Generate(ctx context.Context, log entity.ConversationLog, selections entity.SelectionSet) (*entity.UserReports, error) {
	messages, err := prompt.BuildPersonaPrompt(log, selections)
	if err != nil {
		return nil, err
	}

	reply, err := g.llm.Chat(ctx, messages,
		llm.WithTemperature(constant.PersonaTemperature),
		llm.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("persona chat: %w", err)
	}

	reports, err := ParseReply(reply)
	if err != nil {
		return nil, err
	}
	if err := g.validate.Struct(reports); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	return reports, nil
}

// ParseReply decodes a model reply into UserReports. Markdown fences and
// surrounding prose are stripped; single quotes, trailing commas and
// similar damage are repaired before giving up.
func ParseReply(reply string) (*entity.UserReports, error) {
	body := extractJSON(reply)
	if body == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrInvalidReply)
	}

	var reports entity.UserReports
	if err := json.Unmarshal([]byte(body), &reports); err == nil {
		return &reports, nil
	}

	repaired, err := jsonrepair.JSONRepair(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	if err := json.Unmarshal([]byte(repaired), &reports); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	return &reports, nil
}

func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
