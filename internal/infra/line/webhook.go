package line

import "encoding/json"

// WebhookRequest is the envelope LINE POSTs to the webhook endpoint.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type       string        `json:"type"`
	Timestamp  int64         `json:"timestamp"`
	ReplyToken string        `json:"replyToken"`
	Source     EventSource   `json:"source"`
	Message    *EventMessage `json:"message,omitempty"`
	Postback   *Postback     `json:"postback,omitempty"`
}

type EventSource struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId,omitempty"`
}

type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Postback carries the urlencoded data string set on quick reply actions.
type Postback struct {
	Data string `json:"data"`
}

func ParseWebhookRequest(body []byte) (*WebhookRequest, error) {
	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
