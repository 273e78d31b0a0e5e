package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/skydevhost/skyshop-gateway/internal/config"
)

const telegramAPI = "https://api.telegram.org"

// telegramNotifier рассылает операторские уведомления по чатам
// администраторов. Доставка best-effort: ошибка по одному чату логируется
// и не мешает остальным.
type telegramNotifier struct {
	logger  *slog.Logger
	client  *http.Client
	api     string
	token   string
	chatIDs []int64
}

func NewTelegramNotifier(logger *slog.Logger, cfg config.Telegram) *telegramNotifier {
	return &telegramNotifier{
		logger:  logger.With(slog.String("service", "notifier")),
		client:  &http.Client{Timeout: 10 * time.Second},
		api:     telegramAPI,
		token:   cfg.Token,
		chatIDs: cfg.AdminChatIDs,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (n *telegramNotifier) Announce(ctx context.Context, text string) {
	for _, chatID := range n.chatIDs {
		if err := n.send(ctx, chatID, text); err != nil {
			n.logger.Error("failed to notify admin", "chat_id", chatID, slog.Any("error", err))
			continue
		}
		n.logger.Debug("admin notified", "chat_id", chatID)
	}
}

func (n *telegramNotifier) send(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.api, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}
	return nil
}
