// Package ai implements the core.Analyzer collaborator on top of the
// OpenAI chat completion API. Failures here are expected and cheap:
// the core substitutes a static fallback report whenever Analyze
// returns an error, so this package reports problems instead of
// papering over them.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/parceldesk/parceldesk/internal/core"
)

const systemPrompt = `You are a logistics data reviewer for a Bangladeshi parcel delivery service.
You receive a JSON array of parcel records. Review them for address quality, suspicious
phone numbers, and inconsistent data. Respond with JSON only, no prose, in this shape:
{"summary": "...", "recommendations": ["...", "..."], "correctedParcels": [{"id": "...", "issue": "...", "suggestedAddress": "..."}]}
Only include a parcel in correctedParcels when you have a concrete issue to report.
Only set suggestedAddress when you can propose a more complete address from the data given.`

// Config holds the analyzer settings, loaded from the environment by
// the config package.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Analyzer calls the OpenAI API to produce a quality report over a
// record list. It implements core.Analyzer.
type Analyzer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// New builds an Analyzer from config. An empty API key is a
// configuration choice, not an error: the caller should pass a nil
// analyzer to the core instead.
func New(cfg Config) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Analyzer{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
	}
}

// reportPayload mirrors the JSON contract with the model.
type reportPayload struct {
	Summary         string `json:"summary"`
	Recommendations []string `json:"recommendations"`
	CorrectedParcels []struct {
		ID               string `json:"id"`
		Issue            string `json:"issue"`
		SuggestedAddress string `json:"suggestedAddress"`
	} `json:"correctedParcels"`
}

// Analyze sends the full record list and parses the structured report.
func (a *Analyzer) Analyze(ctx context.Context, records []core.Record) (*core.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(body)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return parseReport(resp.Choices[0].Message.Content)
}

// parseReport decodes the model's JSON reply into a core.Analysis.
// Models occasionally wrap JSON in a markdown fence despite
// instructions; strip it before decoding.
func parseReport(content string) (*core.Analysis, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var payload reportPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	analysis := &core.Analysis{
		Summary:         payload.Summary,
		Recommendations: payload.Recommendations,
	}
	for _, c := range payload.CorrectedParcels {
		if c.ID == "" || c.Issue == "" {
			continue
		}
		analysis.Corrections = append(analysis.Corrections, core.Correction{
			RecordID:         c.ID,
			Issue:            c.Issue,
			SuggestedAddress: c.SuggestedAddress,
		})
	}

	return analysis, nil
}
