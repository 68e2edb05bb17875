package controller

import (
	"errors"

	"aroma-content-be/internal/dto"
	"aroma-content-be/internal/pkg/serverutils"
	"aroma-content-be/internal/service"
	"aroma-content-be/pkg/embedding"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	GeneratePost(ctx *fiber.Ctx) error
	GenerateIdeas(ctx *fiber.Ctx) error
	ResearchTopic(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IGenerationService
}

func NewChatController(service service.IGenerationService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
	r.Post("/chat", c.Chat)
	r.Post("/generate-post", c.GeneratePost)
	r.Post("/generate-ideas", c.GenerateIdeas)
	r.Post("/research-topic", c.ResearchTopic)
}

func (c *chatController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Aromakiss content assistant API",
		"endpoints": []string{
			"/chat - Main chat interface",
			"/generate-post - Generate Telegram posts",
			"/generate-ideas - Generate post ideas",
			"/research-topic - Research topics for content",
			"/health - Service health",
		},
	})
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.HandleChat(ctx.Context(), &req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *chatController) GeneratePost(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	context := c.service.ConversationContext(ctx.Context(), req.ChatId)
	response, err := c.service.GeneratePost(ctx.Context(), req.Message, context)
	if err != nil {
		return c.mapError(ctx, err)
	}
	return ctx.JSON(dto.ChatResponse{Response: response, MessageType: "post", Status: "success"})
}

func (c *chatController) GenerateIdeas(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	context := c.service.ConversationContext(ctx.Context(), req.ChatId)
	response, err := c.service.GenerateIdeas(ctx.Context(), req.Message, context)
	if err != nil {
		return c.mapError(ctx, err)
	}
	return ctx.JSON(dto.ChatResponse{Response: response, MessageType: "ideas", Status: "success"})
}

func (c *chatController) ResearchTopic(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	context := c.service.ConversationContext(ctx.Context(), req.ChatId)
	response, err := c.service.ResearchTopic(ctx.Context(), req.Message, context)
	if err != nil {
		return c.mapError(ctx, err)
	}
	return ctx.JSON(dto.ChatResponse{Response: response, MessageType: "research", Status: "success"})
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:              "healthy",
		CorpusSize:          c.service.CorpusSize(),
		ActiveConversations: c.service.ActiveConversations(ctx.Context()),
	})
}

// mapError translates stage-typed errors into HTTP statuses. Retrieval and
// completion failures are both server-side, but the message names the stage
// so a caller can tell an outage from an empty result.
func (c *chatController) mapError(ctx *fiber.Ctx, err error) error {
	var genErr *service.GenerationError
	if errors.As(err, &genErr) {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.ErrorResponse(500, "Error processing request: "+genErr.Error()))
	}
	var embErr *embedding.ServiceError
	if errors.As(err, &embErr) {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.ErrorResponse(500, "Retrieval failed: "+embErr.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(serverutils.ErrorResponse(500, err.Error()))
}
