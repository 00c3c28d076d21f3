package app

import (
	"context"
	"errors"
	"io"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	sent []sentMessage
	err  error
}

func (f *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return f.err
}

type fakeFetcher struct {
	fetchFn func(cursor homework.Cursor) (homework.RawPayload, error)
	cursors []homework.Cursor
}

func (f *fakeFetcher) Fetch(_ context.Context, cursor homework.Cursor) (homework.RawPayload, error) {
	f.cursors = append(f.cursors, cursor)
	if f.fetchFn == nil {
		return nil, errors.New("Fetch not implemented")
	}
	return f.fetchFn(cursor)
}

type fakeNotifier struct {
	notified  []string
	alerts    []error
	notifyErr error
}

func (f *fakeNotifier) Notify(message string) error {
	f.notified = append(f.notified, message)
	return f.notifyErr
}

func (f *fakeNotifier) Alert(cause error) {
	f.alerts = append(f.alerts, cause)
}

func payload(currentDate int64, homeworks ...map[string]any) homework.RawPayload {
	list := make([]any, 0, len(homeworks))
	for _, hw := range homeworks {
		list = append(list, hw)
	}
	return homework.RawPayload{
		"current_date": currentDate,
		"homeworks":    list,
	}
}
