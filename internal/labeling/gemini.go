package labeling

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/thenoetrevino/gallery/internal/imaging"
)

const labelPrompt = "List the main objects, scenes and concepts visible in this image " +
	"as short labels of one or two words, most prominent first."

// Gemini labels images with a multimodal Gemini model using structured JSON output
type Gemini struct {
	client *genai.Client
	model  string
	limit  int
}

// NewGemini creates a Gemini API client for labeling
func NewGemini(ctx context.Context, apiKey, model string, limit int) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, limit: limit}, nil
}

// Label sends the encoded image with the labeling prompt and parses the JSON array reply
func (g *Gemini) Label(ctx context.Context, img *imaging.Image) ([]string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Raw, img.MIME),
			genai.NewPartFromText(labelPrompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	labels, err := parseLabels(resp.Text())
	if err != nil {
		return nil, err
	}
	return truncate(labels, g.limit), nil
}

// parseLabels decodes a JSON string array, dropping blank entries
func parseLabels(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("invalid label response: %w", err)
	}

	labels := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return labels, nil
}
