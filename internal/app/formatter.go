// internal/app/formatter.go
package app

import (
	"fmt"

	"homework_notification_bot/internal/domain/homework"
)

// FormatStatus renders the notification for a validated record.
// record.Status must be a key of the verdict table.
func FormatStatus(record homework.Record) string {
	verdict, _ := homework.Verdicts().Verdict(record.Status)
	return fmt.Sprintf("Изменился статус проверки работы \"%s\".%s", record.Name, verdict)
}
