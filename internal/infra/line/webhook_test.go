//go:build unit

package line_test

import (
	"testing"

	"cast-dispatch/internal/infra/line"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var webhookCmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func TestParseWebhookRequest(t *testing.T) {
	t.Run("message と postback を含むイベント列を読める", func(t *testing.T) {
		body := []byte(`{
			"destination": "Uadmin",
			"events": [
				{
					"type": "message",
					"timestamp": 1748800800000,
					"replyToken": "token-1",
					"source": {"type": "user", "userId": "U123"},
					"message": {"id": "m1", "type": "text", "text": "ABC123"}
				},
				{
					"type": "postback",
					"timestamp": 1748800860000,
					"replyToken": "token-2",
					"source": {"type": "user", "userId": "U456"},
					"postback": {"data": "assign_id=5&action=accept"}
				}
			]
		}`)

		actual, err := line.ParseWebhookRequest(body)
		require.NoError(t, err)

		expected := &line.WebhookRequest{
			Destination: "Uadmin",
			Events: []line.Event{
				{
					Type:       "message",
					Timestamp:  1748800800000,
					ReplyToken: "token-1",
					Source:     line.EventSource{Type: "user", UserID: "U123"},
					Message:    &line.EventMessage{ID: "m1", Type: "text", Text: "ABC123"},
				},
				{
					Type:       "postback",
					Timestamp:  1748800860000,
					ReplyToken: "token-2",
					Source:     line.EventSource{Type: "user", UserID: "U456"},
					Postback:   &line.Postback{Data: "assign_id=5&action=accept"},
				},
			},
		}
		if diff := cmp.Diff(expected, actual, webhookCmpOpts...); diff != "" {
			t.Errorf("WebhookRequest mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("events が空でもエラーにしない", func(t *testing.T) {
		actual, err := line.ParseWebhookRequest([]byte(`{"events": []}`))
		require.NoError(t, err)
		assert.Empty(t, actual.Events)
	})

	t.Run("未知のイベント種別も落とさず素通しする", func(t *testing.T) {
		body := []byte(`{"events": [{"type": "memberJoined", "timestamp": 1, "source": {"type": "group", "groupId": "G1"}}]}`)

		actual, err := line.ParseWebhookRequest(body)
		require.NoError(t, err)
		require.Len(t, actual.Events, 1)
		assert.Equal(t, "memberJoined", actual.Events[0].Type)
		assert.Equal(t, "G1", actual.Events[0].Source.GroupID)
	})

	t.Run("壊れた JSON はエラー", func(t *testing.T) {
		_, err := line.ParseWebhookRequest([]byte(`{"events": [`))
		require.Error(t, err)
	})
}
