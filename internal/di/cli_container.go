package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/classify"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/factory"
	"github.com/jobsift/jobsift/internal/logging"
	"github.com/jobsift/jobsift/internal/mimetext"
	"github.com/jobsift/jobsift/internal/nlp"
	"github.com/jobsift/jobsift/internal/screen"
	"github.com/jobsift/jobsift/internal/utils"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Assist flags
	Assist      bool
	Provider    string
	MaxTokens   int
	Temperature float64
	TopP        float64
	MaxBodySize int

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Assist flags
	flag.BoolVar(&flags.Assist, "assist", false, "Ask a language model to fill in fields the heuristics missed")
	flag.StringVar(&flags.Provider, "provider", "openai", "Assist provider (openai, gemini, bedrock)")
	flag.IntVar(&flags.MaxTokens, "max-tokens", 1000, "Maximum tokens for the model response")
	flag.Float64Var(&flags.Temperature, "temperature", 0.1, "Temperature for model generation")
	flag.Float64Var(&flags.TopP, "top-p", 0.9, "Top-p for model generation")
	flag.IntVar(&flags.MaxBodySize, "max-body-size", 4096, "Maximum email body size to send to the model")

	// Bedrock flags
	flag.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	flag.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Gemini flags
	flag.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	flag.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-pro", "Gemini model name")

	// OpenAI flags
	flag.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI")
	flag.StringVar(&flags.OpenAIModelName, "openai-model", "gpt-4o-mini", "OpenAI model name")

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewAssistFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register assist client
	if err := container.Provide(func(f *factory.AssistFactory) (core.AssistClient, error) {
		return f.CreateAssistClient()
	}); err != nil {
		return nil, err
	}

	// Register pipeline stages
	if err := container.Provide(func() core.BodyDecoder {
		return mimetext.Decoder{}
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.Screener {
		return screen.NewScreen(logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.Classifier {
		return classify.NewClassifier(logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.EntityExtractor {
		analyzer, err := nlp.NewAnalyzer(logger)
		if err != nil {
			// Extraction runs without tagging rather than blocking startup
			logger.Warn("Language model unavailable", zap.Error(err))
		}
		return extract.NewExtractor(analyzer, logger)
	}); err != nil {
		return nil, err
	}

	// Register tracker service
	if err := container.Provide(core.NewTrackerService); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// Set assist engine
	v.Set("assist.enabled", flags.Assist)
	v.Set("assist.provider", flags.Provider)

	// Set provider-specific configuration
	switch flags.Provider {
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
		v.Set("bedrock.max_tokens", flags.MaxTokens)
		v.Set("bedrock.temperature", flags.Temperature)
		v.Set("bedrock.top_p", flags.TopP)
		v.Set("bedrock.max_body_size", flags.MaxBodySize)
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
		v.Set("gemini.max_tokens", flags.MaxTokens)
		v.Set("gemini.temperature", flags.Temperature)
		v.Set("gemini.top_p", flags.TopP)
		v.Set("gemini.max_body_size", flags.MaxBodySize)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.model_name", flags.OpenAIModelName)
		v.Set("openai.max_tokens", flags.MaxTokens)
		v.Set("openai.temperature", flags.Temperature)
		v.Set("openai.top_p", flags.TopP)
		v.Set("openai.max_body_size", flags.MaxBodySize)
	}

	return config.NewFromViper(v)
}
