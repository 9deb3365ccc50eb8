package entity

import "time"

// ConversationTurn is one question / answer / assistant reply exchange.
type ConversationTurn struct {
	Timestamp    time.Time `json:"timestamp"`
	Question     string    `json:"question"`
	UserResponse string    `json:"userResponse"`
	AiResponse   string    `json:"aiResponse"`
	SessionId    string    `json:"sessionId,omitempty"`
}

// ConversationLog is ordered by append time.
type ConversationLog []ConversationTurn

// SessionId is the session of the most recent turn, empty when unknown.
func (l ConversationLog) SessionId() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1].SessionId
}

// UserResponses returns the user's answers in order.
func (l ConversationLog) UserResponses() []string {
	out := make([]string, 0, len(l))
	for _, turn := range l {
		out = append(out, turn.UserResponse)
	}
	return out
}
