package dto

type ChatRequest struct {
	Message     string `json:"message" validate:"required"`
	MessageType string `json:"message_type,omitempty"` // "post" | "ideas" | "research" | "conversation"
	ChatId      string `json:"chat_id,omitempty"`
}

type ChatResponse struct {
	Response    string `json:"response"`
	MessageType string `json:"message_type"`
	Status      string `json:"status"`
}

type GeneratePostRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type GenerateIdeasRequest struct {
	Theme string `json:"theme,omitempty"`
}

type ResearchTopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type HealthResponse struct {
	Status              string `json:"status"`
	CorpusSize          int    `json:"corpus_size"`
	ActiveConversations int    `json:"active_conversations"`
}
