package bootstrap

import (
	"context"
	"log"
	"math/rand"
	"time"

	"readme-be/internal/config"
	"readme-be/internal/constant"
	"readme-be/internal/controller"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/memory"
	"readme-be/internal/repository/unitofwork"
	"readme-be/internal/scheduler"
	"readme-be/internal/service"
	"readme-be/pkg/extract"
	"readme-be/pkg/llm/factory"
	"readme-be/pkg/quiz"
	"readme-be/pkg/recommend"
	"readme-be/pkg/signals"
	"readme-be/pkg/tagging"
	"readme-be/pkg/vocab"

	pktNats "readme-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const bookChangedTopic = "BOOK_CHANGED"

type Container struct {
	// Controllers
	BookController           controller.IBookController
	TaggingController        controller.ITaggingController
	RecommendationController controller.IRecommendationController
	QuizController           controller.IQuizController
	HealthController         controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	Scheduler       *scheduler.Scheduler

	// Batch Services (Exposed for the manual trigger CLIs)
	TaggingService        service.ITaggingService
	RecommendationService service.IRecommendationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure; a missing broker degrades to
	// in-process operation without external fan-out.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. AI Oracles
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.ApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	quizProvider := llmProvider
	if cfg.Ai.QuizModel != "" && cfg.Ai.QuizModel != cfg.Ai.Model {
		quizProvider, err = factory.NewLLMProvider(
			cfg.Ai.Provider,
			cfg.Ai.QuizModel,
			cfg.Ai.BaseURL,
			cfg.Ai.ApiKey,
		)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize quiz LLM Provider: %v", err)
		}
		log.Printf("[INFO] Using quiz LLM model: %s", cfg.Ai.QuizModel)
	}

	// 4. Pipeline Components
	bookCache := memory.NewBookMetadataCache()

	repos := uowFactory.NewUnitOfWork(context.Background())
	aggregator := signals.NewAggregator(
		repos.BookInteractionRepository(),
		repos.ReadingProgressRepository(),
		repos.ReadingSessionRepository(),
		repos.QuizAttemptRepository(),
		repos.QuizAnalyticsRepository(),
		repos.BookRepository(),
		bookCache,
		signals.DefaultWeights(),
		sysLogger,
	)

	ranker := recommend.NewRanker(llmProvider, sysLogger)

	classifier := tagging.NewClassifier(
		llmProvider,
		vocab.New(constant.AllowedTags...),
		vocab.New(constant.AllowedTraits...),
		vocab.New(constant.AllowedAges...),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		sysLogger,
	)

	quizGenerator := quiz.NewGenerator(quizProvider, sysLogger)
	extractor := extract.NewHTTPExtractor()

	// 5. Services
	publisherService := service.NewPublisherService(bookChangedTopic, pubSub)
	bookService := service.NewBookService(uowFactory, publisherService)
	taggingService := service.NewTaggingService(
		uowFactory,
		classifier,
		extractor,
		natsPub,
		cfg.Scheduler.TaggingBatchSize,
		sysLogger,
	)
	recommendationService := service.NewRecommendationService(
		uowFactory,
		aggregator,
		ranker,
		natsPub,
		sysLogger,
	)
	quizService := service.NewQuizService(uowFactory, quizGenerator, extractor, sysLogger)
	consumerService := service.NewConsumerService(pubSub, bookChangedTopic, uowFactory, sysLogger)

	// 6. Scheduler
	sched := scheduler.New(cfg.Scheduler, taggingService, recommendationService, sysLogger)

	// 7. Controllers
	return &Container{
		BookController:           controller.NewBookController(bookService),
		TaggingController:        controller.NewTaggingController(taggingService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		QuizController:           controller.NewQuizController(quizService),
		HealthController:         controller.NewHealthController(),

		ConsumerService: consumerService,
		Scheduler:       sched,

		TaggingService:        taggingService,
		RecommendationService: recommendationService,
	}
}
