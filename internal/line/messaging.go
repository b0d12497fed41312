package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// MessagingReplier sends replies through the LINE Messaging API
type MessagingReplier struct {
	api *messaging_api.MessagingApiAPI
}

// NewMessagingReplier creates a replier. endpoint overrides the API host and may be empty.
func NewMessagingReplier(channelToken, endpoint string) (*MessagingReplier, error) {
	var opts []messaging_api.MessagingApiAPIOption
	if endpoint != "" {
		opts = append(opts, messaging_api.WithEndpoint(endpoint))
	}
	api, err := messaging_api.NewMessagingApiAPI(channelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateClientFailed, err)
	}
	return &MessagingReplier{api: api}, nil
}

// ReplyText sends a single text message
func (m *MessagingReplier) ReplyText(ctx context.Context, replyToken, text string) error {
	_, err := m.api.WithContext(ctx).ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReplyFailed, err)
	}
	return nil
}
