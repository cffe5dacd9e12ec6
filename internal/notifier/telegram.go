package notifier

import (
	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/telegram"
)

// TelegramNotifier delivers artifacts to a Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a Telegram-backed notifier
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{client: client}, nil
}

// Deliver uploads the artifact with its caption via sendDocument
func (n *TelegramNotifier) Deliver(d *Delivery) error {
	return n.client.SendDocument(telegram.Document{
		Path:     d.ArtifactPath,
		Caption:  d.Caption,
		ThreadID: d.ThreadID,
	})
}
