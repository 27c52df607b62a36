// Package openai provides a commentary.Client implementation backed by the
// OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"appraiser/pkg/commentary"
	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
)

const systemPrompt = "You are a senior domain name broker writing appraisal " +
	"commentary for customers. Be concise and factual: two or three sentences, " +
	"no preamble, no markdown."

// Client generates commentary through the OpenAI API and fulfills the
// commentary.Client interface. It is safe for concurrent use.
type Client struct {
	api    *openai.Client
	apiKey string
	model  string
}

// New creates an OpenAI commentary client. A nil httpClient uses the
// library's default transport; an empty model selects GPT-4o mini.
func New(httpClient *http.Client, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Client{api: openai.NewClientWithConfig(cfg), apiKey: apiKey, model: model}
}

// Commentary asks the model for a short prose assessment. An unusable API
// key short-circuits with ErrConfig before any network traffic; the reason
// (absent vs invalid) is logged but never attached to the returned error.
func (c *Client) Commentary(ctx context.Context, req commentary.Request) (string, error) {
	if reason := credentialProblem(c.apiKey); reason != "" {
		logger.Warn(ctx, "commentary generation skipped, api key unusable", zap.String("reason", reason))

		return "", serrors.With(serrors.ErrConfig, "openai api key not configured")
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: 0.6,
		MaxTokens:   180,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", serrors.Wrap(serrors.ErrTimeout, err, "openai request deadline exceeded")
		}

		return "", serrors.Wrap(serrors.ErrUpstream, err, "openai request failed")
	}
	if len(resp.Choices) == 0 {
		return "", serrors.With(serrors.ErrUpstream, "openai returned no completion choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", serrors.With(serrors.ErrUpstream, "openai returned an empty completion")
	}

	return text, nil
}

func buildPrompt(req commentary.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Domain: %s\n", req.Domain)
	fmt.Fprintf(&b, "Appraisal score: %.1f/100 (%s bracket)\n", req.FinalScore, req.Bracket)
	if len(req.Highlights) > 0 {
		b.WriteString("Signals:\n")
		for _, h := range req.Highlights {
			b.WriteString("- " + h + "\n")
		}
	}
	b.WriteString("Write the commentary.")

	return b.String()
}

// credentialProblem reports why the key cannot be used ("absent" or
// "invalid"), or an empty string when it looks usable. OpenAI keys carry an
// "sk-" prefix; anything else is a template value.
func credentialProblem(key string) string {
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == "":
		return "absent"
	case !strings.HasPrefix(trimmed, "sk-"), strings.EqualFold(trimmed, "sk-your-key"):
		return "invalid"
	}

	return ""
}
