package bootstrap

import (
	"context"
	"log"

	"aroma-content-be/internal/config"
	"aroma-content-be/internal/controller"
	"aroma-content-be/internal/pkg/logger"
	"aroma-content-be/internal/service"
	"aroma-content-be/pkg/conversation"
	"aroma-content-be/pkg/corpus"
	"aroma-content-be/pkg/embedding"
	"aroma-content-be/pkg/llm/factory"
	"aroma-content-be/pkg/retriever"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	ChatController controller.IChatController
	Logger         logger.ILogger

	// Exposed for the CLI and for shutdown hooks
	GenerationService service.IGenerationService
}

// NewContainer wires the corpus pipeline and the generation facade. Corpus
// load and index build failures are fatal: the process must not serve with
// a missing or partial index.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 1. Corpus
	store, err := corpus.Load(cfg.App.CorpusPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load corpus: %v", err)
	}
	log.Printf("[INFO] Loaded corpus: %d posts from %s", store.Len(), cfg.App.CorpusPath)

	// 2. Embedding Provider based on Config
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	// 3. Index built once at startup, immutable afterwards
	index, err := embedding.Build(context.Background(), embeddingProvider, store.Texts())
	if err != nil {
		log.Fatalf("[FATAL] Failed to build embedding index: %v", err)
	}
	log.Printf("[INFO] Embedding index ready: %d vectors, dim %d", index.Len(), index.Dim())

	// 4. LLM Provider based on Config
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Conversation store
	var convStore conversation.Store
	if cfg.App.ConversationStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		convStore = conversation.NewRedisStore(rdb)
		log.Printf("[INFO] Using Conversation Store: REDIS")
	} else {
		convStore = conversation.NewMemoryStore()
		log.Printf("[INFO] Using Conversation Store: MEMORY")
	}

	generationService := service.NewGenerationService(
		store,
		retriever.New(store, index, embeddingProvider),
		llmProvider,
		convStore,
		sysLogger,
	)

	return &Container{
		ChatController:    controller.NewChatController(generationService),
		Logger:            sysLogger,
		GenerationService: generationService,
	}
}
