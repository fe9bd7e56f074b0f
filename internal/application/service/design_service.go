package service

import (
	"context"
	"strings"

	"github.com/masquepolleras/polleras-api/pkg/apperror"
	"github.com/masquepolleras/polleras-api/pkg/gemini"
)

// DesignService generates pollera design previews from a text idea
type DesignService struct {
	client *gemini.Client
}

// NewDesignService creates a new design service. A nil client means
// generation is disabled and requests get a 503.
func NewDesignService(client *gemini.Client) *DesignService {
	return &DesignService{client: client}
}

// Generate asks the image model for a design and returns it as a
// base64 data URL.
func (s *DesignService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", apperror.NewServiceUnavailableError("Design generation is not configured")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperror.NewFieldValidationError("prompt", "Prompt is required")
	}

	image, err := s.client.GenerateDesign(ctx, prompt)
	if err != nil {
		return "", apperror.NewBadGatewayError("Design generation failed")
	}

	return image, nil
}
