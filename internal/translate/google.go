package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hanscan/internal/textutil"
	"hanscan/internal/worker"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleClient calls the public web translation endpoint, one request per
// phrase, fanned out through a worker pool batch by batch.
type GoogleClient struct {
	cfg        Config
	endpoint   string
	httpClient *http.Client
}

func NewGoogleClient(cfg Config) *GoogleClient {
	return &GoogleClient{
		cfg:      cfg,
		endpoint: googleEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GoogleClient) Name() string { return "google" }

func (c *GoogleClient) BatchTranslate(ctx context.Context, phrases []string) (map[string]string, error) {
	if len(phrases) == 0 {
		return map[string]string{}, nil
	}

	out := make(map[string]string, len(phrases))
	pool := worker.NewPool(c.cfg.MaxConcurrent, c.translateOne)

	failures := 0
	for i, batch := range worker.Batch(phrases, c.cfg.BatchSize) {
		if i > 0 {
			worker.Pause(ctx, c.cfg.BatchDelay)
		}
		for _, oc := range pool.Execute(ctx, batch) {
			if oc.Err != nil || oc.Result == "" {
				failures++
				continue
			}
			out[oc.Input] = oc.Result
		}
	}
	if failures == len(phrases) {
		return nil, fmt.Errorf("google translate: all %d requests failed", failures)
	}
	return out, nil
}

func (c *GoogleClient) translateOne(ctx context.Context, p string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * retryBase
			log.Debug().Int("attempt", attempt+1).Dur("backoff", backoff).Msg("Retrying request")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		result, err := c.doRequest(ctx, p)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("translate %q failed after %d attempts: %w",
		textutil.Truncate(p, 10), maxRetries, lastErr)
}

func (c *GoogleClient) doRequest(ctx context.Context, p string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", defaultLang(c.cfg.SourceLang, "zh-CN"))
	params.Set("tl", defaultLang(c.cfg.TargetLang, "en"))
	params.Set("dt", "t")
	params.Set("q", p)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, textutil.Truncate(string(body), 200))
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse pulls the translated segments out of the endpoint's
// nested-array payload: [[["hello","你好",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unmarshal segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if text, ok := seg[0].(string); ok {
			b.WriteString(text)
		}
	}
	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", fmt.Errorf("empty translation")
	}
	return result, nil
}

func defaultLang(lang, fallback string) string {
	if lang == "" {
		return fallback
	}
	return lang
}
