// Package prompt assembles the messages sent to the chat model.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"soulful-home-be/internal/constant"
	"soulful-home-be/internal/entity"
	"soulful-home-be/pkg/llm"
)

// BuildInterviewPrompt returns the system instruction for one interview
// turn: every recorded selection, the question being asked and the reply
// rules.
func BuildInterviewPrompt(selections entity.SelectionSet, currentQuestion string) string {
	var sb strings.Builder
	sb.WriteString(constant.InterviewSystemPromptHeader)
	sb.WriteString("\n")
	for _, id := range selections.QuestionIds() {
		tags := selections[id].Tags
		sb.WriteString(fmt.Sprintf(constant.InterviewSelectionLineTemplate,
			id,
			strings.Join(tags.Style, ", "),
			strings.Join(tags.Personality, ", "),
			strings.Join(tags.Emotional, ", "),
		))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(constant.InterviewCurrentQuestionTemplate, currentQuestion))
	sb.WriteString("\n\n")
	sb.WriteString(constant.InterviewReplyInstruction)
	return sb.String()
}

// InterviewMessages prepends the system instruction to the full history.
// Nothing is dropped or summarized.
func InterviewMessages(selections entity.SelectionSet, currentQuestion string, history []llm.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: BuildInterviewPrompt(selections, currentQuestion),
	})
	return append(messages, history...)
}

// AggregatedTags merges the tags of every selection, keeping first-seen
// order and dropping duplicates.
type AggregatedTags struct {
	Style       []string `json:"style"`
	Personality []string `json:"personality"`
	Emotional   []string `json:"emotional"`
}

func AggregateTags(selections entity.SelectionSet) AggregatedTags {
	agg := AggregatedTags{Style: []string{}, Personality: []string{}, Emotional: []string{}}
	seen := map[string]map[string]bool{"s": {}, "p": {}, "e": {}}
	add := func(dst *[]string, set map[string]bool, values []string) {
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" || set[v] {
				continue
			}
			set[v] = true
			*dst = append(*dst, v)
		}
	}
	for _, id := range selections.QuestionIds() {
		tags := selections[id].Tags
		add(&agg.Style, seen["s"], tags.Style)
		add(&agg.Personality, seen["p"], tags.Personality)
		add(&agg.Emotional, seen["e"], tags.Emotional)
	}
	return agg
}

// BuildPersonaPrompt returns the profiler system and user messages for a
// finished quiz run.
func BuildPersonaPrompt(log entity.ConversationLog, selections entity.SelectionSet) ([]llm.Message, error) {
	tags, err := json.MarshalIndent(AggregateTags(selections), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	answers := make([]string, 0, len(log))
	for _, r := range log.UserResponses() {
		if r = strings.TrimSpace(r); r != "" {
			answers = append(answers, r)
		}
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: constant.PersonaProfilerSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(constant.PersonaProfilerUserTemplate, tags, strings.Join(answers, "\n"))},
	}, nil
}
