// Package reflection asks a chat model for a short reflection over an
// account's recent logs. It never fails: any model error, timeout or empty
// answer is replaced by a fixed sentence.
package reflection

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/config"
	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// FallbackOnError is returned when the model cannot be reached.
	FallbackOnError = "The path to peace is walked one step at a time."
	// FallbackOnEmpty is returned when the model answers with nothing.
	FallbackOnEmpty = "May the stillness of today bring you the clarity you seek."

	// RecentLimit is how many of the newest logs are sent to the model.
	RecentLimit = 15
)

const systemPrompt = `Role: A gentle, thoughtful wellness guide for a personal sanctuary journal.
Task: Analyze these recent logs and provide a single encouraging reflection.
Tone: Warm, minimal, like a handwritten letter.
Constraints: 1-3 sentences maximum. No bullet points. No generic AI phrasing.`

// NewOpenAIModel builds an OpenAI-compatible chat model from cfg.
func NewOpenAIModel(cfg *config.Config) (llms.Model, error) {
	opts := []openai.Option{openai.WithModel(cfg.ReflectionModel)}
	if cfg.ReflectionAPIKey != "" {
		opts = append(opts, openai.WithToken(cfg.ReflectionAPIKey))
	}
	if cfg.ReflectionEndpoint != "" {
		opts = append(opts, openai.WithBaseURL(cfg.ReflectionEndpoint))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create reflection client: %w", err)
	}
	return m, nil
}

type Reflector struct {
	model   llms.Model
	timeout time.Duration
	log     logging.Logger
}

// New returns a Reflector. A nil model is allowed and always yields
// FallbackOnError; a zero timeout disables the deadline.
func New(model llms.Model, timeout time.Duration, log logging.Logger) *Reflector {
	return &Reflector{model: model, timeout: timeout, log: log}
}

type logSummary struct {
	Date     string          `json:"date"`
	Category models.Category `json:"category"`
	Content  string          `json:"content"`
}

// summarize keeps the last RecentLimit logs and reduces each to its date,
// category and either its notes or its raw payload.
func summarize(logs []models.LogEntry) []logSummary {
	if len(logs) > RecentLimit {
		logs = logs[len(logs)-RecentLimit:]
	}
	out := make([]logSummary, 0, len(logs))
	for _, l := range logs {
		content := l.Notes
		if content == "" {
			content = string(l.InputData)
		}
		out = append(out, logSummary{Date: l.Date, Category: l.Category, Content: content})
	}
	return out
}

// Reflect returns a reflection over logs, which are expected in insertion
// order.
func (r *Reflector) Reflect(ctx context.Context, logs []models.LogEntry) string {
	if r.model == nil {
		r.log.Warn(ctx, "reflection model not configured")
		return FallbackOnError
	}

	data, err := json.Marshal(summarize(logs))
	if err != nil {
		r.log.Warn(ctx, "reflection input encoding failed", "error", err)
		return FallbackOnError
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Data: %s\n\nOutput Format: Just the reflection text.", data))},
		},
	}

	resp, err := r.model.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		r.log.Warn(ctx, "reflection request failed", "error", err)
		return FallbackOnError
	}
	if resp == nil || len(resp.Choices) == 0 {
		return FallbackOnEmpty
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return FallbackOnEmpty
	}
	return text
}
