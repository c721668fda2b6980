package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/voicejournal/voicejournal-backend/internal/config"
	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// maxAnalysisChars bounds token usage: input longer than this many
// characters is truncated silently (~4000 tokens).
const maxAnalysisChars = 16000

const analysisSystemPrompt = `You are an assistant that analyzes voice journal entries.
Your task is to extract structured information from the text.

For each entry, provide:
1. A brief summary (1-2 sentences) capturing the main point
2. A mood score from 1 to 10 (1=very bad, 5=neutral, 10=excellent)
3. Up to 5 relevant tags describing the topics mentioned

Be concise and accurate. Match the language of the entry in your summary.`

// analysisSchema is the JSON schema the model must honor. The response is
// still re-validated field by field after receipt.
var analysisSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary": map[string]any{
			"type":        "string",
			"description": "Brief summary of the entry in 1-2 sentences",
		},
		"mood_score": map[string]any{
			"type":        "integer",
			"description": "Mood score from 1 (very bad) to 10 (excellent)",
		},
		"tags": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "List of relevant tags (max 5)",
		},
	},
	"required":             []string{"summary", "mood_score", "tags"},
	"additionalProperties": false,
}

// analysisResponse mirrors the declared output schema.
type analysisResponse struct {
	Summary   string   `json:"summary"`
	MoodScore int      `json:"mood_score"`
	Tags      []string `json:"tags"`
}

// Analyzer produces a structured judgment (summary, mood score, tags) over
// a transcription via the chat completions API.
type Analyzer struct {
	client   openai.Client
	model    string
	minWords int
	maxTags  int
	log      *slog.Logger
}

// NewAnalyzer creates an Analyzer from the shared OpenAI credentials and
// analysis settings. Retries are disabled, per-request timeout from
// cfg.Timeout.
func NewAnalyzer(oai config.OpenAIConfig, cfg config.AnalysisConfig, logger *slog.Logger) *Analyzer {
	opts := []option.RequestOption{
		option.WithAPIKey(oai.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if oai.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(oai.BaseURL))
	}

	return &Analyzer{
		client:   openai.NewClient(opts...),
		model:    cfg.Model,
		minWords: cfg.MinWords,
		maxTags:  cfg.MaxTags,
		log:      logger.With("adapter", "analyzer"),
	}
}

// Analyze returns a normalized AnalysisResult for the given text, or
// (nil, nil) when the text is empty or below the minimum word count —
// a cost gate, not an error. No external call is made in that case.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	words := len(strings.Fields(text))
	if words < a.minWords {
		a.log.DebugContext(ctx, "text below analysis threshold",
			slog.Int("words", words), slog.Int("min_words", a.minWords))
		return nil, nil
	}

	// Counted in runes so a multi-byte character is never split, which
	// would put invalid UTF-8 into the request body.
	if utf8.RuneCountInString(text) > maxAnalysisChars {
		runes := []rune(text)
		a.log.WarnContext(ctx, "truncating analysis input",
			slog.Int("from", len(runes)), slog.Int("to", maxAnalysisChars))
		text = string(runes[:maxAnalysisChars])
	}

	a.log.DebugContext(ctx, "analyzing text", slog.Int("words", words), slog.String("model", a.model))

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisSystemPrompt),
			openai.UserMessage("Analyze this journal entry:\n\n" + text),
		},
		Model: openai.ChatModel(a.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "journal_analysis",
					Schema: analysisSchema,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		a.log.ErrorContext(ctx, "analysis request failed", slog.String("error", err.Error()))
		return nil, mapAPIError(err, "analyze")
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("analyze: no choices: %w", domain.ErrParseFailed)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("analyze: empty content: %w", domain.ErrParseFailed)
	}

	var parsed analysisResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		// Raw content logged for diagnosis; the error itself stays opaque.
		a.log.ErrorContext(ctx, "analysis response not parseable",
			slog.String("error", err.Error()), slog.String("raw", content))
		return nil, fmt.Errorf("analyze: %w", domain.ErrParseFailed)
	}

	result := &domain.AnalysisResult{
		Summary:   parsed.Summary,
		MoodScore: parsed.MoodScore,
		Tags:      parsed.Tags,
	}
	result.Normalize(a.maxTags)

	// The cap is applied again after normalization so it holds even if an
	// intermediate representation bypassed the first check.
	if len(result.Tags) > a.maxTags {
		result.Tags = result.Tags[:a.maxTags]
	}

	a.log.InfoContext(ctx, "analysis successful",
		slog.Int("mood_score", result.MoodScore),
		slog.Int("tags", len(result.Tags)),
		slog.Int("summary_len", len(result.Summary)),
	)

	return result, nil
}
