package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/osse101/GachaLab_Go/internal/logger"
)

// ErrInvalidSignature is returned when the X-Line-Signature check fails
var ErrInvalidSignature = errors.New("invalid LINE signature")

// Replier sends a text reply to a LINE reply token
type Replier interface {
	ReplyText(ctx context.Context, replyToken, text string) error
}

// Config holds the LINE channel settings
type Config struct {
	ChannelSecret string
	AdminKeyword  string
	AdminURL      string
	BaseURL       string
}

// Service answers LINE webhook deliveries
type Service struct {
	cfg     Config
	replier Replier
}

// NewService creates a LINE webhook service
func NewService(cfg Config, replier Replier) *Service {
	return &Service{cfg: cfg, replier: replier}
}

// HandleWebhook verifies the request signature and processes every event.
// Reply failures are logged and do not fail the delivery.
func (s *Service) HandleWebhook(r *http.Request) (int, error) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cb, err := webhook.ParseRequest(s.cfg.ChannelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			return 0, ErrInvalidSignature
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgParseRequestFailed, err)
	}
	log.Debug(LogMsgWebhookReceived, "events", len(cb.Events))

	replied := 0
	for _, event := range cb.Events {
		e, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}
		text, ok := e.Message.(webhook.TextMessageContent)
		if !ok || !s.isAdminKeyword(ctx, text.Text) {
			continue
		}

		log.Info(LogMsgAdminKeywordSeen)
		if err := s.replier.ReplyText(ctx, e.ReplyToken, fmt.Sprintf(AdminReplyFormat, s.AdminURL())); err != nil {
			log.Error(LogMsgReplyFailed, "error", err)
			continue
		}
		replied++
	}
	return replied, nil
}

// isAdminKeyword compares trimmed, case-insensitive text against the configured keyword
func (s *Service) isAdminKeyword(ctx context.Context, text string) bool {
	keyword := strings.TrimSpace(s.cfg.AdminKeyword)
	if keyword == "" {
		logger.FromContext(ctx).Warn(LogMsgKeywordMissing)
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), keyword)
}

// AdminURL is the console link sent back to admins
func (s *Service) AdminURL() string {
	if s.cfg.AdminURL != "" {
		return s.cfg.AdminURL
	}
	if s.cfg.BaseURL != "" {
		return strings.TrimRight(s.cfg.BaseURL, "/") + DefaultAdminPath
	}
	return DefaultAdminPath
}
