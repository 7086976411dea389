package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/utils"
)

// Client is an implementation of the AssistClient interface using Amazon Bedrock
type Client struct {
	client        *bedrockruntime.Client
	modelID       string
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

// NewClient creates a new Bedrock assist client
func NewClient(
	region string,
	modelID string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*Client, error) {
	// Load AWS configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{
		client:        bedrockruntime.NewFromConfig(awsCfg),
		modelID:       modelID,
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

// AnalyzeMessage asks the model which application stage a message
// represents and what it can tell about the company and position
func (c *Client) AnalyzeMessage(ctx context.Context, sender, subject, body string) (*core.AssistResult, error) {
	// Process the body (truncate and sanitize)
	processedBody := c.textProcessor.ProcessText(body, c.maxBodySize)

	prompt := fmt.Sprintf(c.promptFormat, sender, subject, processedBody)

	// Create the request based on the model
	var payload []byte
	var err error

	if c.isAnthropicModel() {
		// Anthropic Claude models
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":               prompt,
			"max_tokens_to_sample": c.maxTokens,
			"temperature":          c.temperature,
			"top_p":                c.topP,
		})
	} else if c.isAmazonTitanModel() {
		// Amazon Titan models
		payload, err = json.Marshal(map[string]interface{}{
			"inputText": prompt,
			"textGenerationConfig": map[string]interface{}{
				"maxTokenCount": c.maxTokens,
				"temperature":   c.temperature,
				"topP":          c.topP,
			},
		})
	} else {
		// Default to a generic format
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":      prompt,
			"max_tokens":  c.maxTokens,
			"temperature": c.temperature,
			"top_p":       c.topP,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	// Call Bedrock API
	resp, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	responseText, err := c.responseText(resp.Body)
	if err != nil {
		return nil, err
	}

	analysis, err := parseAnalysis(responseText)
	if err != nil {
		return nil, err
	}

	return c.toResult(analysis), nil
}

// responseText pulls the generated text out of a model response, which
// differs per model family
func (c *Client) responseText(body []byte) (string, error) {
	if c.isAnthropicModel() {
		// Anthropic Claude models
		var claudeResp struct {
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(body, &claudeResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Claude response: %w", err)
		}
		return claudeResp.Completion, nil
	}

	if c.isAmazonTitanModel() {
		// Amazon Titan models
		var titanResp struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &titanResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Titan response: %w", err)
		}
		if len(titanResp.Results) == 0 {
			return "", fmt.Errorf("empty response from Titan model")
		}
		return titanResp.Results[0].OutputText, nil
	}

	// Try a generic approach
	var genericResp struct {
		Output   string `json:"output"`
		Text     string `json:"text"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &genericResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal generic response: %w", err)
	}

	// Try different fields
	if genericResp.Output != "" {
		return genericResp.Output, nil
	}
	if genericResp.Text != "" {
		return genericResp.Text, nil
	}
	if genericResp.Response != "" {
		return genericResp.Response, nil
	}

	// Just use the raw response as a string
	return string(body), nil
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
		ModelUsed:  c.modelID,
	}
}

// isAnthropicModel checks if the model is an Anthropic Claude model
func (c *Client) isAnthropicModel() bool {
	return strings.HasPrefix(c.modelID, "anthropic.claude")
}

// isAmazonTitanModel checks if the model is an Amazon Titan model
func (c *Client) isAmazonTitanModel() bool {
	return strings.HasPrefix(c.modelID, "amazon.titan")
}
