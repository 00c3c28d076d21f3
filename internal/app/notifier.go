// internal/app/notifier.go
package app

import (
	"fmt"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// alertMessages are the operator-facing headlines per error category.
var alertMessages = map[homework.ErrorKind]string{
	homework.KindTransport:     "не удалось выполнить запрос к API",
	homework.KindEndpoint:      "эндпоинт API недоступен",
	homework.KindSchema:        "в ответе API нет ожидаемых ключей",
	homework.KindUnknownStatus: "недокументированный статус домашней работы",
	homework.KindOther:         "сбой в работе бота",
}

// Notifier delivers status messages to the student chat and failure alerts to the operator chat.
type Notifier struct {
	client      domainTelegram.Client
	chatID      int64
	adminChatID int64
	logger      *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID, adminChatID int64, logger *logrus.Entry) *Notifier {
	if adminChatID == 0 {
		adminChatID = chatID
	}
	return &Notifier{
		client:      client,
		chatID:      chatID,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// Notify sends message to the student chat. A failed send is logged and
// returned as a delivery error; callers must not treat it as fatal.
func (n *Notifier) Notify(message string) error {
	logCtx := n.logger.WithField("chat_id", n.chatID)
	if err := n.client.SendMessage(n.chatID, message, &telebot.SendOptions{DisableWebPagePreview: true}); err != nil {
		logCtx.WithError(err).Error("Failed to send status message")
		return homework.DeliveryError(err)
	}
	logCtx.Info("Status message sent")
	return nil
}

// Alert sends one operator message describing cause. Delivery failures are logged only.
func (n *Notifier) Alert(cause error) {
	if cause == nil {
		return
	}
	kind := homework.KindOf(cause)
	text := AlertText(cause)

	logCtx := n.logger.WithFields(logrus.Fields{
		"chat_id":  n.adminChatID,
		"category": kind,
	})
	if err := n.client.SendMessage(n.adminChatID, text, &telebot.SendOptions{DisableWebPagePreview: true}); err != nil {
		logCtx.WithError(homework.DeliveryError(err)).Error("Failed to send error alert")
		return
	}
	logCtx.Info("Error alert sent")
}

// AlertText renders the operator message for cause.
func AlertText(cause error) string {
	kind := homework.KindOf(cause)
	headline, ok := alertMessages[kind]
	if !ok {
		headline = alertMessages[homework.KindOther]
	}
	return fmt.Sprintf("Ошибка: %s: %v", headline, cause)
}
