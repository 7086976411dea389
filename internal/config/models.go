package config

// IntakeConfig represents the configuration for the message intake frontend
type IntakeConfig struct {
	Type          string
	ListenAddress string
	Domain        string
	RunOnce       bool
}

// GmailConfig represents the configuration for the Gmail source
type GmailConfig struct {
	CredentialsPath string
	TokenPath       string
	MaxResults      int64
}

// UserConfig represents the tracked user
type UserConfig struct {
	Email string
}

// SheetsConfig represents the configuration for the tracker spreadsheet
type SheetsConfig struct {
	Title string
}

// StoreConfig represents the configuration for the user store
type StoreConfig struct {
	Type        string
	SQLitePath  string
	MySQLDSN    string
	PostgresDSN string
}

// AssistConfig represents the assist engine selection
type AssistConfig struct {
	Enabled  bool
	Provider string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GetIntake returns the intake configuration
func (c *Config) GetIntake() IntakeConfig {
	return IntakeConfig{
		Type:          c.GetString("intake.type"),
		ListenAddress: c.GetString("intake.listen_address"),
		Domain:        c.GetString("intake.domain"),
		RunOnce:       c.GetBool("intake.run_once"),
	}
}

// GetGmail returns the Gmail source configuration
func (c *Config) GetGmail() GmailConfig {
	return GmailConfig{
		CredentialsPath: c.GetString("gmail.credentials_path"),
		TokenPath:       c.GetString("gmail.token_path"),
		MaxResults:      c.GetInt64("gmail.max_results"),
	}
}

// GetUser returns the tracked user configuration
func (c *Config) GetUser() UserConfig {
	return UserConfig{
		Email: c.GetString("user.email"),
	}
}

// GetSheets returns the spreadsheet configuration
func (c *Config) GetSheets() SheetsConfig {
	return SheetsConfig{
		Title: c.GetString("sheets.title"),
	}
}

// GetStore returns the user store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:        c.GetString("store.type"),
		SQLitePath:  c.GetString("store.sqlite_path"),
		MySQLDSN:    c.GetString("store.mysql_dsn"),
		PostgresDSN: c.GetString("store.postgres_dsn"),
	}
}

// GetAssist returns the assist engine configuration
func (c *Config) GetAssist() AssistConfig {
	return AssistConfig{
		Enabled:  c.GetBool("assist.enabled"),
		Provider: c.GetString("assist.provider"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}
