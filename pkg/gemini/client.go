package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoImage is returned when the model answers without image data
var ErrNoImage = errors.New("gemini: response contains no image")

// Client wraps the Gemini API for pollera design generation
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client. The key is required; the model defaults
// to the image-capable flash model when empty.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: missing API key")
	}
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: c, model: model}, nil
}

// enhancePrompt wraps the user's idea with the fixed style directives
// every generated design shares.
func enhancePrompt(prompt string) string {
	return "High quality, photorealistic image of a Panamanian Pollera traditional dress. " +
		"Details: " + prompt + ". " +
		"Focus on intricate embroidery, gold jewelry (tembleques), and vibrant colors. " +
		"Professional fashion photography, soft lighting, cultural heritage style."
}

// GenerateDesign asks the model for a pollera design image and returns
// it as a base64 PNG data URL.
func (c *Client) GenerateDesign(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(enhancePrompt(prompt)),
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return "data:image/png;base64," +
					base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}

	return "", ErrNoImage
}
