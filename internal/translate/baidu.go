package translate

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"hanscan/internal/worker"
)

const baiduEndpoint = "https://fanyi-api.baidu.com/api/trans/vip/translate"

// BaiduClient calls the Baidu machine translation API. Phrases are joined
// with newlines so a single request carries a whole batch, and the result
// lines come back keyed by source phrase.
type BaiduClient struct {
	cfg  Config
	http *resty.Client
}

func NewBaiduClient(cfg Config) *BaiduClient {
	return &BaiduClient{
		cfg: cfg,
		http: resty.New().
			SetBaseURL(baiduEndpoint).
			SetTimeout(30 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(retryBase),
	}
}

func (c *BaiduClient) Name() string { return "baidu" }

type baiduResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	ErrorCode   string `json:"error_code"`
	ErrorMsg    string `json:"error_msg"`
	TransResult []struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	} `json:"trans_result"`
}

func (c *BaiduClient) BatchTranslate(ctx context.Context, phrases []string) (map[string]string, error) {
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

func (c *BaiduClient) translateBatch(ctx context.Context, batch []string, out map[string]string) error {
	salt := strconv.FormatInt(time.Now().UnixNano(), 10)
	q := strings.Join(batch, "\n")

	var result baiduResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"q":     q,
			"from":  baiduLang(defaultLang(c.cfg.SourceLang, "zh")),
			"to":    baiduLang(defaultLang(c.cfg.TargetLang, "en")),
			"appid": c.cfg.BaiduAppID,
			"salt":  salt,
			"sign":  baiduSign(c.cfg.BaiduAppID, q, salt, c.cfg.BaiduSecret),
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		return fmt.Errorf("baidu API call: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("baidu API error (status %d)", resp.StatusCode())
	}
	// 52000 is the documented success code.
	if result.ErrorCode != "" && result.ErrorCode != "52000" {
		return fmt.Errorf("baidu API error [%s]: %s", result.ErrorCode, result.ErrorMsg)
	}

	for _, tr := range result.TransResult {
		if tr.Dst != "" {
			out[tr.Src] = tr.Dst
		}
	}
	return nil
}

// baiduSign is MD5(appid + query + salt + secret) in lowercase hex.
func baiduSign(appID, q, salt, secret string) string {
	h := md5.Sum([]byte(appID + q + salt + secret))
	return hex.EncodeToString(h[:])
}

func baiduLang(lang string) string {
	switch strings.ToLower(lang) {
	case "zh-cn", "zh-hans", "zh":
		return "zh"
	case "en-us", "en-gb", "en":
		return "en"
	default:
		return strings.ToLower(lang)
	}
}
