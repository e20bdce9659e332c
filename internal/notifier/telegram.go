package notifier

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

const (
	telegramAPIBaseURL = "https://api.telegram.org/"
	telegramTimeout    = 10 * time.Second
)

// TelegramNotifier sends availability to a Telegram chat through the Bot API
type TelegramNotifier struct {
	botToken string
	chatID   string
	api      *sling.Sling
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NewTelegramNotifier creates a new Telegram notifier
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	return newTelegramNotifier(telegramAPIBaseURL, botToken, chatID)
}

func newTelegramNotifier(baseURL, botToken, chatID string) (*TelegramNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	api := sling.New().
		Client(&http.Client{Timeout: telegramTimeout}).
		Base(baseURL)

	return &TelegramNotifier{botToken: botToken, chatID: chatID, api: api}, nil
}

// Notify sends the availability summary to the configured chat
func (n *TelegramNotifier) Notify(results []availability.Result) error {
	payload := sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  FormatMessage(results),
		DisableWebPagePreview: true,
	}

	var success, failure telegramResponse
	resp, err := n.api.New().
		Post(fmt.Sprintf("bot%s/sendMessage", n.botToken)).
		BodyJSON(payload).
		Receive(&success, &failure)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, failure.Description)
	}
	if !success.OK {
		return fmt.Errorf("telegram API error: %s", success.Description)
	}
	return nil
}
