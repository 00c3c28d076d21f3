package telegram

import "gopkg.in/telebot.v3"

// Client sends text messages to a Telegram chat.
// The bot library stays behind this interface so app code can be tested with fakes.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
