package service

import (
	"context"
	"fmt"
	"strings"

	"aroma-content-be/internal/dto"
	"aroma-content-be/internal/pkg/logger"
	"aroma-content-be/pkg/conversation"
	"aroma-content-be/pkg/corpus"
	"aroma-content-be/pkg/llm"
	"aroma-content-be/pkg/prompt"
	"aroma-content-be/pkg/retriever"
)

// GenerationError marks a completion call failure. Retrieval and corpus
// errors pass through unwrapped so callers can tell the stages apart.
type GenerationError struct {
	Task string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s task: %v", e.Task, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IGenerationService is the content generation facade. One operation per
// task kind plus the routed chat entrypoint.
type IGenerationService interface {
	GeneratePost(ctx context.Context, topic, conversationContext string) (string, error)
	GenerateIdeas(ctx context.Context, theme, conversationContext string) (string, error)
	ResearchTopic(ctx context.Context, topic, conversationContext string) (string, error)
	RefineContent(ctx context.Context, request, conversationContext string) (string, error)
	ConversationalChat(ctx context.Context, message, conversationContext string) (string, error)
	HandleChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ConversationContext(ctx context.Context, chatId string) string
	CorpusSize() int
	ActiveConversations(ctx context.Context) int
}

type generationService struct {
	store       *corpus.Store
	retriever   *retriever.Retriever
	llmProvider llm.Provider
	convStore   conversation.Store
	logger      logger.ILogger
}

func NewGenerationService(
	store *corpus.Store,
	ret *retriever.Retriever,
	llmProvider llm.Provider,
	convStore conversation.Store,
	log logger.ILogger,
) IGenerationService {
	return &generationService{
		store:       store,
		retriever:   ret,
		llmProvider: llmProvider,
		convStore:   convStore,
		logger:      log,
	}
}

// ideaCategories drives the diversity sample used when no theme is given:
// two exemplars from each category, retrieved against the brand's core query.
var ideaCategories = []corpus.Category{
	corpus.CategoryEducational,
	corpus.CategorySeasonal,
	corpus.CategoryFragrance,
	corpus.CategoryDecor,
	corpus.CategoryCommercial,
}

const ideaSeedQuery = "свечи"

func (s *generationService) GeneratePost(ctx context.Context, topic, conversationContext string) (string, error) {
	s.logger.Info("generation", "Generating post", map[string]interface{}{"topic": truncate(topic, 50)})

	profile := prompt.ProfileFor(prompt.TaskPost)
	examples, err := s.retriever.Retrieve(ctx, topic, profile.ExampleCount, "")
	if err != nil {
		return "", err
	}
	return s.complete(ctx, prompt.TaskPost, topic, examples, conversationContext)
}

func (s *generationService) GenerateIdeas(ctx context.Context, theme, conversationContext string) (string, error) {
	s.logger.Info("generation", "Generating post ideas", map[string]interface{}{"theme": theme})

	profile := prompt.ProfileFor(prompt.TaskIdeas)
	var examples []retriever.Example
	var err error
	if theme != "" {
		examples, err = s.retriever.Retrieve(ctx, theme, profile.ExampleCount, "")
		if err != nil {
			return "", err
		}
	} else {
		// No theme: sample across categories so the ideas cover the whole
		// content mix instead of one cluster.
		for _, category := range ideaCategories {
			batch, err := s.retriever.Retrieve(ctx, ideaSeedQuery, 2, category)
			if err != nil {
				return "", err
			}
			examples = append(examples, batch...)
		}
	}
	return s.complete(ctx, prompt.TaskIdeas, theme, examples, conversationContext)
}

func (s *generationService) ResearchTopic(ctx context.Context, topic, conversationContext string) (string, error) {
	s.logger.Info("generation", "Researching topic", map[string]interface{}{"topic": topic})

	profile := prompt.ProfileFor(prompt.TaskResearch)
	examples, err := s.retriever.Retrieve(ctx, topic, profile.ExampleCount, "")
	if err != nil {
		return "", err
	}
	return s.complete(ctx, prompt.TaskResearch, topic, examples, conversationContext)
}

func (s *generationService) RefineContent(ctx context.Context, request, conversationContext string) (string, error) {
	s.logger.Info("generation", "Refining content", map[string]interface{}{"request": truncate(request, 50)})

	// Refinement works purely off the prior conversation, no exemplars.
	return s.complete(ctx, prompt.TaskRefinement, request, nil, conversationContext)
}

func (s *generationService) ConversationalChat(ctx context.Context, message, conversationContext string) (string, error) {
	s.logger.Info("generation", "Processing conversational message", map[string]interface{}{"message": truncate(message, 50)})

	return s.complete(ctx, prompt.TaskConversation, message, nil, conversationContext)
}

func (s *generationService) complete(ctx context.Context, kind prompt.TaskKind, query string, examples []retriever.Example, conversationContext string) (string, error) {
	profile := prompt.ProfileFor(kind)
	prompts := prompt.Compose(kind, query, examples, conversationContext)

	response, err := s.llmProvider.Complete(ctx, prompts.System, prompts.User,
		llm.WithTemperature(profile.Temperature),
		llm.WithMaxTokens(profile.MaxTokens),
	)
	if err != nil {
		s.logger.Error("generation", "Completion call failed", map[string]interface{}{
			"task":  string(kind),
			"error": err.Error(),
		})
		return "", &GenerationError{Task: string(kind), Err: err}
	}
	return response, nil
}

// Prefix markers take routing priority over loose keyword matches.
var (
	postPrefixes     = []string{"пост:", "напиши пост", "создай пост"}
	ideaPrefixes     = []string{"идеи:", "предложи идеи", "идеи для постов"}
	researchPrefixes = []string{"исследование:", "расскажи о", "что такое"}

	postKeywords     = []string{"пост", "напиши", "создай"}
	ideaKeywords     = []string{"идеи", "предложи", "темы"}
	researchKeywords = []string{"расскажи", "что такое", "как", "почему"}
)

// HandleChat routes a free-form message to a task kind and threads the
// conversation buffer around the generation call. Routing priority:
// explicit message_type, then prefix markers, then keyword sniffing, then
// open conversation.
func (s *generationService) HandleChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(request.Message)
	lower := strings.ToLower(message)
	chatId := request.ChatId

	s.logger.Info("chat", "Processing message", map[string]interface{}{
		"message": truncate(message, 50),
		"type":    request.MessageType,
		"chat_id": chatId,
	})

	if chatId != "" {
		if err := s.convStore.Append(ctx, chatId, "user", message); err != nil {
			s.logger.Warn("chat", "Failed to record user turn", map[string]interface{}{"error": err.Error()})
		}
	}
	conversationContext := s.ConversationContext(ctx, chatId)

	var (
		response     string
		responseType string
		err          error
	)

	switch {
	case request.MessageType == "post" || hasAnyPrefix(lower, postPrefixes):
		content := message
		if strings.HasPrefix(lower, "пост:") {
			content = strings.TrimSpace(message[len("пост:"):])
		}
		response, err = s.GeneratePost(ctx, content, conversationContext)
		responseType = "post"

	case request.MessageType == "ideas" || hasAnyPrefix(lower, ideaPrefixes):
		var theme string
		if strings.HasPrefix(lower, "идеи:") {
			theme = strings.TrimSpace(message[len("идеи:"):])
		} else {
			theme = message
			theme = strings.ReplaceAll(theme, "предложи идеи", "")
			theme = strings.ReplaceAll(theme, "идеи для постов", "")
			theme = strings.TrimSpace(theme)
		}
		response, err = s.GenerateIdeas(ctx, theme, conversationContext)
		responseType = "ideas"

	case request.MessageType == "research" || hasAnyPrefix(lower, researchPrefixes):
		topic := message
		if strings.HasPrefix(lower, "исследование:") {
			topic = strings.TrimSpace(message[len("исследование:"):])
		}
		response, err = s.ResearchTopic(ctx, topic, conversationContext)
		responseType = "research"

	case containsAny(lower, postKeywords):
		response, err = s.GeneratePost(ctx, message, conversationContext)
		responseType = "post"

	case containsAny(lower, ideaKeywords):
		response, err = s.GenerateIdeas(ctx, message, conversationContext)
		responseType = "ideas"

	case containsAny(lower, researchKeywords):
		response, err = s.ResearchTopic(ctx, message, conversationContext)
		responseType = "research"

	default:
		response, err = s.ConversationalChat(ctx, message, conversationContext)
		responseType = "conversation"
	}

	if err != nil {
		return nil, err
	}

	if chatId != "" {
		if err := s.convStore.Append(ctx, chatId, "assistant", response); err != nil {
			s.logger.Warn("chat", "Failed to record assistant turn", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ChatResponse{
		Response:    response,
		MessageType: responseType,
		Status:      "success",
	}, nil
}

// ConversationContext loads the rendered prior-turn block for a chat key.
// Empty key or a store miss yields an empty context, never an error.
func (s *generationService) ConversationContext(ctx context.Context, chatId string) string {
	if chatId == "" {
		return ""
	}
	text, err := s.convStore.Context(ctx, chatId)
	if err != nil {
		s.logger.Warn("chat", "Failed to load conversation context", map[string]interface{}{
			"chat_id": chatId,
			"error":   err.Error(),
		})
		return ""
	}
	return text
}

func (s *generationService) CorpusSize() int {
	return s.store.Len()
}

func (s *generationService) ActiveConversations(ctx context.Context) int {
	count, err := s.convStore.ActiveCount(ctx)
	if err != nil {
		s.logger.Warn("chat", "Failed to count active conversations", map[string]interface{}{"error": err.Error()})
		return 0
	}
	return count
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
