// internal/domain/homework/verdict.go
package homework

// Status is a review status code reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// VerdictTable maps a review status to the sentence shown to the student.
// It is read-only; use Verdict to look a status up.
type VerdictTable struct {
	verdicts map[Status]string
}

var defaultVerdicts = VerdictTable{
	verdicts: map[Status]string{
		StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
		StatusReviewing: "Работа взята на проверку ревьюером.",
		StatusRejected:  "Работа проверена, в ней нашлись ошибки.",
	},
}

// Verdicts returns the table of known review statuses.
func Verdicts() VerdictTable {
	return defaultVerdicts
}

// Verdict returns the sentence for status and whether the status is known.
func (t VerdictTable) Verdict(status Status) (string, bool) {
	v, ok := t.verdicts[status]
	return v, ok
}

// Known reports whether status is a key of the table.
func (t VerdictTable) Known(status Status) bool {
	_, ok := t.verdicts[status]
	return ok
}
