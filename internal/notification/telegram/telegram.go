package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/notification"
)

// maxMessageLength is the Bot API limit for a message text
const maxMessageLength = 4096

// Config holds the configuration for the Telegram Bot API
type Config struct {
	BotToken string
	APIURL   string
}

// sendMessageRequest is the sendMessage payload; plain text so handles need no escaping
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiResponse is the Bot API response envelope
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

type sink struct {
	httpClient adapter.HTTPClient
	endpoint   string
}

// NewSink creates a notification sink posting to the Telegram Bot API
func NewSink(cfg Config, httpClient adapter.HTTPClient) (notification.Sink, error) {
	if cfg.BotToken == "" {
		return nil, errors.New("telegram bot token is required")
	}

	return &sink{
		httpClient: httpClient,
		endpoint:   fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(cfg.APIURL, "/"), cfg.BotToken),
	}, nil
}

// Send posts the text with sendMessage, truncating to the API limit
func (s *sink) Send(ctx context.Context, chatID string, text string) error {
	if chatID == "" {
		return fmt.Errorf("%w: chat id is empty", domain.ErrNotificationDelivery)
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                chatID,
		Text:                  truncate(text, maxMessageLength),
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", domain.ErrNotificationDelivery, err)
	}

	respBody, err := s.httpClient.PostJSON(ctx, s.endpoint, body)
	if err != nil {
		var httpErr *adapter.HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Errorf("%w: telegram returned %d: %s", domain.ErrNotificationDelivery, httpErr.StatusCode, describe(httpErr.Body))
		}
		// The endpoint embeds the bot token, so transport errors are not echoed verbatim
		return fmt.Errorf("%w: request to telegram failed", domain.ErrNotificationDelivery)
	}

	var resp apiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("%w: failed to decode telegram response: %v", domain.ErrNotificationDelivery, err)
	}
	if !resp.OK {
		return fmt.Errorf("%w: telegram error %d: %s", domain.ErrNotificationDelivery, resp.ErrorCode, resp.Description)
	}

	logger.InfoCtx(ctx, "Telegram message sent", zap.String("chat_id", chatID), zap.Int("length", len(text)))

	return nil
}

// describe extracts the Bot API description from an error body
func describe(body string) string {
	var resp apiResponse
	if err := json.Unmarshal([]byte(body), &resp); err == nil && resp.Description != "" {
		return resp.Description
	}
	return body
}

// truncate cuts text to at most limit runes
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-1]) + "…"
}
