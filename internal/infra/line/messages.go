package line

import "fmt"

// Outbound message payloads for the Messaging API. Quick-reply and template
// buttons carry postback data that round-trips through the inbound webhook.

type Message struct {
	Type       string      `json:"type"`
	Text       string      `json:"text,omitempty"`
	AltText    string      `json:"altText,omitempty"`
	Template   *Template   `json:"template,omitempty"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

type QuickReplyItem struct {
	Type   string `json:"type"`
	Action Action `json:"action"`
}

type Action struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Data  string `json:"data,omitempty"`
}

type Template struct {
	Type    string   `json:"type"`
	Title   string   `json:"title,omitempty"`
	Text    string   `json:"text"`
	Actions []Action `json:"actions"`
}

func TextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

// InviteMessage is the invitation push with accept/decline quick replies.
// The postback data keys are the inbound contract: assign_id and action.
func InviteMessage(text string, assignmentID int64) Message {
	return Message{
		Type: "text",
		Text: text,
		QuickReply: &QuickReply{
			Items: []QuickReplyItem{
				{
					Type: "action",
					Action: Action{
						Type:  "postback",
						Label: "参加する",
						Data:  fmt.Sprintf("assign_id=%d&action=accept", assignmentID),
					},
				},
				{
					Type: "action",
					Action: Action{
						Type:  "postback",
						Label: "辞退する",
						Data:  fmt.Sprintf("assign_id=%d&action=decline", assignmentID),
					},
				},
			},
		},
	}
}

// ExtendPromptMessage is the end-of-match reminder sent to the requester
// with +1h/+2h extension buttons.
func ExtendPromptMessage(title, text string, matchID int64) Message {
	return Message{
		Type:    "template",
		AltText: title,
		Template: &Template{
			Type:  "buttons",
			Title: title,
			Text:  text,
			Actions: []Action{
				{
					Type:  "postback",
					Label: "＋1時間延長",
					Data:  fmt.Sprintf("action=extend&hours=1&match_id=%d", matchID),
				},
				{
					Type:  "postback",
					Label: "＋2時間延長",
					Data:  fmt.Sprintf("action=extend&hours=2&match_id=%d", matchID),
				},
			},
		},
	}
}
