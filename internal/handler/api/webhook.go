package api

import (
	"io"
	"log/slog"
	"net/http"

	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/pkg/config"
	"cast-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ボディサイズ上限。LINEのイベントバッチは高々数KB
const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	webhookCmds   commands.WebhookCommands
	channelSecret string
}

func NewWebhookHandler(webhookCmds commands.WebhookCommands, cfg config.LineConfig) *WebhookHandler {
	return &WebhookHandler{
		webhookCmds:   webhookCmds,
		channelSecret: cfg.ChannelSecret,
	}
}

// Handle verifies the signature over the raw body and applies the events.
// A correctly signed request always gets 200: event-level failures are
// logged and never surface to the sender, which would otherwise retry the
// whole batch.
//
// @Summary LINE webhook
// @Description Receive Messaging API events
// @Tags webhook
// @Accept json
// @Produce json
// @Param X-Line-Signature header string true "HMAC-SHA256 signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /line/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read body",
		})
		return
	}

	signature := c.GetHeader("X-Line-Signature")
	if !line.ValidateSignature(h.channelSecret, body, signature) {
		slog.Warn("webhook signature verification failed", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	req, err := line.ParseWebhookRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid body",
		})
		return
	}

	h.webhookCmds.ProcessEvents(c.Request.Context(), req.Events)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
