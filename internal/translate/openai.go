package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"hanscan/internal/worker"
)

// OpenAIClient asks a chat model for translations in a strict JSON shape,
// one request per batch.
type OpenAIClient struct {
	cfg    Config
	client *openai.Client
}

func NewOpenAIClient(cfg Config) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIClient{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) BatchTranslate(ctx context.Context, phrases []string) (map[string]string, error) {
	if len(phrases) == 0 {
		return map[string]string{}, nil
	}

	out := make(map[string]string, len(phrases))
	for i, batch := range worker.Batch(phrases, c.cfg.BatchSize) {
		if i > 0 {
			worker.Pause(ctx, c.cfg.BatchDelay)
		}
		if err := c.translateBatch(ctx, batch, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *OpenAIClient) translateBatch(ctx context.Context, batch []string, out map[string]string) error {
	model := c.cfg.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(batch)},
		},
	})
	if err != nil {
		return fmt.Errorf("openai API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("openai: empty response")
	}

	translations, err := parseTranslations(resp.Choices[0].Message.Content, len(batch))
	if err != nil {
		return err
	}
	for i, tr := range translations {
		if tr != "" {
			out[batch[i]] = tr
		}
	}
	return nil
}

func (c *OpenAIClient) systemPrompt() string {
	return fmt.Sprintf(`You are a UI copy translator. Translate each numbered phrase into %s.
Keep translations short and natural for buttons, labels and messages.
Respond with a JSON object {"translations": ["...", "..."]} holding one entry per input phrase, in input order.`,
		defaultLang(c.cfg.TargetLang, "en"))
}

func buildUserPrompt(batch []string) string {
	var b strings.Builder
	for i, p := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return b.String()
}

// parseTranslations decodes {"translations": [...]} and pads or trims to
// want entries so zipping with the batch never misaligns.
func parseTranslations(content string, want int) ([]string, error) {
	var payload struct {
		Translations []string `json:"translations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("openai: parse response: %w", err)
	}
	got := payload.Translations
	if len(got) > want {
		got = got[:want]
	}
	for len(got) < want {
		got = append(got, "")
	}
	return got, nil
}
