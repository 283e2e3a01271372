package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"travelsmart/internal/models"
)

// Gemini implements Assistant using Google's Gemini models.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini initializes a Gemini-backed assistant. apiKey should come from
// the environment; model names a generative model such as "gemini-2.0-flash".
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) GenerateTravelPlan(ctx context.Context, req models.TripRequest, weather, insights any) (string, error) {
	prompt := buildTravelPlanPrompt(req, weather, insights)
	text, err := g.generate(ctx, travelPlanSystem, prompt, 0.7, 2048)
	if err != nil {
		return "", fmt.Errorf("generate travel plan: %w", err)
	}
	return text, nil
}

func (g *Gemini) OptimizeItinerary(ctx context.Context, itinerary map[string]any, constraints map[string]any) (string, error) {
	prompt := buildOptimizePrompt(itinerary, constraints)
	text, err := g.generate(ctx, optimizeSystem, prompt, 0.5, 1536)
	if err != nil {
		return "", fmt.Errorf("optimize itinerary: %w", err)
	}
	return text, nil
}

func (g *Gemini) AnswerQuestion(ctx context.Context, question, questionContext string) (string, error) {
	prompt := buildQuestionPrompt(question, questionContext)
	text, err := g.generate(ctx, questionSystem, prompt, 0.6, 1024)
	if err != nil {
		return "", fmt.Errorf("answer travel question: %w", err)
	}
	return text, nil
}

func (g *Gemini) GeneratePackingList(ctx context.Context, destination string, start, end time.Time, forecast any, activities []string) (string, error) {
	prompt := buildPackingPrompt(destination, start, end, forecast, activities)
	text, err := g.generate(ctx, packingSystem, prompt, 0.4, 1536)
	if err != nil {
		return "", fmt.Errorf("generate packing list: %w", err)
	}
	return text, nil
}

// generate performs one prompt/response round trip. There is no retry here:
// degrading or failing on model errors is the orchestrator's decision.
func (g *Gemini) generate(ctx context.Context, system, prompt string, temperature float32, maxTokens int32) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
