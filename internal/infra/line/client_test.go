//go:build unit

package line_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*line.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := line.NewClient(config.LineConfig{
		ChannelAccessToken: "test-token",
		APIBaseURL:         server.URL,
		PushTimeout:        2 * time.Second,
	}, nil)
	return client, server
}

func TestClientPush(t *testing.T) {
	t.Run("正常系: push payload と headers を検証", func(t *testing.T) {
		var gotPath, gotAuth, gotRetryKey string
		var gotPayload map[string]any

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotRetryKey = r.Header.Get("X-Line-Retry-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			w.WriteHeader(http.StatusOK)
		})

		err := client.Push(context.Background(), "U123", line.TextMessage("こんにちは"))
		require.NoError(t, err)

		assert.Equal(t, "/v2/bot/message/push", gotPath)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.NotEmpty(t, gotRetryKey)
		assert.Equal(t, "U123", gotPayload["to"])

		messages, ok := gotPayload["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]any)
		assert.Equal(t, "text", msg["type"])
		assert.Equal(t, "こんにちは", msg["text"])
	})

	t.Run("異常系: 4xx 応答はボディ込みのエラー", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Invalid user ID"}`))
		})

		err := client.Push(context.Background(), "bad-user", line.TextMessage("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=400")
		assert.Contains(t, err.Error(), "Invalid user ID")
	})

	t.Run("無効化モード: トークンなしはスキップして nil", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))
		defer server.Close()

		client := line.NewClient(config.LineConfig{APIBaseURL: server.URL}, nil)
		require.False(t, client.Enabled())

		err := client.Push(context.Background(), "U123", line.TextMessage("x"))
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("宛先なし: 未連携ユーザーへの push はスキップ", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(http.ResponseWriter, *http.Request) {
			called = true
		})

		err := client.Push(context.Background(), "", line.TextMessage("x"))
		require.NoError(t, err)
		assert.False(t, called)
	})
}

func TestClientReply(t *testing.T) {
	t.Run("正常系: replyToken を載せて送信", func(t *testing.T) {
		var gotPath string
		var gotPayload map[string]any

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			w.WriteHeader(http.StatusOK)
		})

		err := client.Reply(context.Background(), "reply-token-1", line.TextMessage("了解です"))
		require.NoError(t, err)

		assert.Equal(t, "/v2/bot/message/reply", gotPath)
		assert.Equal(t, "reply-token-1", gotPayload["replyToken"])
	})

	t.Run("トークン空: 送信せず nil", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(http.ResponseWriter, *http.Request) {
			called = true
		})

		err := client.Reply(context.Background(), "", line.TextMessage("x"))
		require.NoError(t, err)
		assert.False(t, called)
	})
}

func TestQuickReplyMessages(t *testing.T) {
	t.Run("招待メッセージは accept/decline の postback を持つ", func(t *testing.T) {
		msg := line.InviteMessage("本文", 42)

		require.NotNil(t, msg.QuickReply)
		require.Len(t, msg.QuickReply.Items, 2)
		assert.Equal(t, "assign_id=42&action=accept", msg.QuickReply.Items[0].Action.Data)
		assert.Equal(t, "assign_id=42&action=decline", msg.QuickReply.Items[1].Action.Data)
	})

	t.Run("延長プロンプトは 1h/2h の postback を持つ", func(t *testing.T) {
		msg := line.ExtendPromptMessage("タイトル", "本文", 7)

		require.NotNil(t, msg.Template)
		require.Len(t, msg.Template.Actions, 2)
		assert.Equal(t, "action=extend&hours=1&match_id=7", msg.Template.Actions[0].Data)
		assert.Equal(t, "action=extend&hours=2&match_id=7", msg.Template.Actions[1].Data)
	})
}

func TestValidateSignature(t *testing.T) {
	body := []byte(`{"events":[]}`)
	secret := "secret"

	t.Run("正しい署名を受理する", func(t *testing.T) {
		assert.True(t, line.ValidateSignature(secret, body, line.SignBody(secret, body)))
	})

	t.Run("別の秘密鍵で作った署名は拒否", func(t *testing.T) {
		assert.False(t, line.ValidateSignature(secret, body, line.SignBody("other", body)))
	})

	t.Run("改ざんされたボディは拒否", func(t *testing.T) {
		sig := line.SignBody(secret, body)
		assert.False(t, line.ValidateSignature(secret, []byte(`{"events":[{}]}`), sig))
	})

	t.Run("base64 でない署名は拒否", func(t *testing.T) {
		assert.False(t, line.ValidateSignature(secret, body, "!!not-base64!!"))
	})

	t.Run("秘密鍵未設定なら常に拒否", func(t *testing.T) {
		assert.False(t, line.ValidateSignature("", body, line.SignBody("", body)))
	})
}
