package translate

import (
	"context"
	"fmt"
	"time"
)

// Service turns a batch of phrases into translations keyed by the source
// phrase. A phrase may be missing from the result when its translation
// failed; only a provider-wide failure (network, auth, quota) comes back
// as an error.
type Service interface {
	Name() string
	BatchTranslate(ctx context.Context, phrases []string) (map[string]string, error)
}

// Config carries provider credentials and batching behavior.
type Config struct {
	SourceLang string
	TargetLang string

	BatchSize     int
	BatchDelay    time.Duration
	MaxConcurrent int

	BaiduAppID  string
	BaiduSecret string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

const maxRetries = 3

// retryBase scales the linear backoff between attempts.
var retryBase = 2 * time.Second

// New builds the named provider.
func New(provider string, cfg Config) (Service, error) {
	switch provider {
	case "google", "":
		return NewGoogleClient(cfg), nil
	case "baidu":
		if cfg.BaiduAppID == "" || cfg.BaiduSecret == "" {
			return nil, fmt.Errorf("baidu provider requires BAIDU_APP_ID and BAIDU_APP_SECRET")
		}
		return NewBaiduClient(cfg), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", provider)
	}
}
