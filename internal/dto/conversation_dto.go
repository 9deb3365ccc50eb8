package dto

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

type ConversationRequest struct {
	CurrentQuestion string        `json:"currentQuestion" validate:"required"`
	Messages        []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	SessionId       string        `json:"sessionId,omitempty"`
}

type ConversationResponse struct {
	Message   string `json:"message"`
	SessionId string `json:"sessionId,omitempty"`
	Turns     int    `json:"turns"`
}

type ResetConversationResponse struct {
	SessionId string `json:"sessionId"`
}
