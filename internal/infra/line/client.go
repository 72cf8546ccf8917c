package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cast-dispatch/internal/pkg/config"

	"github.com/google/uuid"
)

// Client pushes messages through the LINE Messaging API. Sends are
// fire-and-forget from the engine's perspective: failures are logged with
// enough context to correlate with the triggering entity and are never
// returned as transaction failures.
//
// With no channel access token configured the client is disabled and every
// send degrades to "skipped, logged".
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.LineConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChannelAccessToken == "" {
		logger.Warn("LINE channel access token missing; push notifications disabled")
	}
	return &Client{
		token:   cfg.ChannelAccessToken,
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{Timeout: cfg.PushTimeout},
		logger:  logger,
	}
}

func (c *Client) Enabled() bool {
	return c.token != ""
}

// Push sends messages to a user identified by their channel identity.
// X-Line-Retry-Key makes platform-side retries idempotent.
func (c *Client) Push(ctx context.Context, to string, messages ...Message) error {
	if !c.Enabled() {
		c.logger.Info("LINE push skipped: client disabled", "to", to)
		return nil
	}
	if to == "" {
		c.logger.Info("LINE push skipped: recipient not linked")
		return nil
	}

	payload := map[string]any{
		"to":       to,
		"messages": messages,
	}
	return c.post(ctx, "/v2/bot/message/push", payload, map[string]string{
		"X-Line-Retry-Key": uuid.NewString(),
	})
}

// Reply answers an inbound event using its reply token.
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if !c.Enabled() {
		c.logger.Info("LINE reply skipped: client disabled")
		return nil
	}
	if replyToken == "" {
		return nil
	}

	payload := map[string]any{
		"replyToken": replyToken,
		"messages":   messages,
	}
	return c.post(ctx, "/v2/bot/message/reply", payload, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, headers map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode line payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build line request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("line %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("line %s status=%d body=%s", path, res.StatusCode, string(body))
	}
	return nil
}
