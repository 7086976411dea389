package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/utils"
)

// Client is an implementation of the AssistClient interface using Google Gemini
type Client struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxBodySize   int
	logger        *zap.Logger
	promptFormat  string
	textProcessor *utils.TextProcessor
}

// AnalysisResponse represents the structured response from the LLM
type AnalysisResponse struct {
	Category   string  `json:"category"`
	Company    string  `json:"company"`
	Position   string  `json:"position"`
	Confidence float64 `json:"confidence"`
}

// NewClient creates a new Gemini assist client
func NewClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*Client, error) {
	// Create a new Gemini client
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Create a generative model
	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &Client{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
		promptFormat: `You are a job application email analyst. The email below relates to a job search. Work out which stage of the application process it represents and which company and position it concerns.
Respond with a JSON object containing:
- category: one of "application", "interview", "assessment", "offers", "rejections", "unknown"
- company: string (the employer's name, or an empty string if you cannot tell)
- position: string (the job title, or an empty string if you cannot tell)
- confidence: number between 0 and 1 (how confident you are in your assessment)

Email:
From: %s
Subject: %s
Body:
%s

Respond only with the JSON object and nothing else.`,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// AnalyzeMessage asks the model which application stage a message
// represents and what it can tell about the company and position
func (c *Client) AnalyzeMessage(ctx context.Context, sender, subject, body string) (*core.AssistResult, error) {
	// Process the body (truncate and sanitize)
	processedBody := c.textProcessor.ProcessText(body, c.maxBodySize)

	prompt := fmt.Sprintf(c.promptFormat, sender, subject, processedBody)

	// Call Gemini API
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	// Extract the response text
	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	analysis, err := parseAnalysis(responseText)
	if err != nil {
		return nil, err
	}

	return c.toResult(analysis), nil
}

// parseAnalysis parses the LLM's JSON response, falling back to the
// first JSON object embedded in surrounding prose
func parseAnalysis(responseText string) (*AnalysisResponse, error) {
	var analysis AnalysisResponse
	if err := json.Unmarshal([]byte(responseText), &analysis); err != nil {
		// Try to extract JSON from the text response
		jsonStart := 0
		jsonEnd := len(responseText)

		// Find JSON start
		for i := 0; i < len(responseText); i++ {
			if responseText[i] == '{' {
				jsonStart = i
				break
			}
		}

		// Find JSON end
		for i := len(responseText) - 1; i >= 0; i-- {
			if responseText[i] == '}' {
				jsonEnd = i + 1
				break
			}
		}

		if jsonStart >= jsonEnd {
			return nil, fmt.Errorf("failed to extract JSON from LLM response: %w", err)
		}

		jsonStr := responseText[jsonStart:jsonEnd]
		if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
			return nil, fmt.Errorf("failed to parse LLM response as JSON: %w", err)
		}
	}

	return &analysis, nil
}

// toResult maps a parsed analysis onto the core result, folding any
// unrecognized category into unknown
func (c *Client) toResult(analysis *AnalysisResponse) *core.AssistResult {
	category := core.Category(strings.ToLower(strings.TrimSpace(analysis.Category)))
	if !category.Valid() {
		c.logger.Debug("Assist returned unrecognized category",
			zap.String("category", analysis.Category))
		category = core.CategoryUnknown
	}

	return &core.AssistResult{
		Category:   category,
		Company:    strings.TrimSpace(analysis.Company),
		Position:   strings.TrimSpace(analysis.Position),
		Confidence: analysis.Confidence,
		ModelUsed:  c.modelName,
	}
}
