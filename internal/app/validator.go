// internal/app/validator.go
package app

import (
	"encoding/json"
	"math"

	"homework_notification_bot/internal/domain/homework"
)

// Field names of the homework statuses response.
const (
	fieldCurrentDate  = "current_date"
	fieldHomeworks    = "homeworks"
	fieldStatus       = "status"
	fieldHomeworkName = "homework_name"
)

// ValidateResponse turns a raw API payload into a PollResult.
// Missing or mistyped fields yield a schema error; a status absent from the
// verdict table yields an unknown status error. The payload is not modified.
func ValidateResponse(payload homework.RawPayload) (homework.PollResult, error) {
	rawDate, ok := payload[fieldCurrentDate]
	if !ok {
		return nil, homework.SchemaError("missing required field %q", fieldCurrentDate)
	}
	currentDate, ok := asInt64(rawDate)
	if !ok {
		return nil, homework.SchemaError("field %q is not an integer", fieldCurrentDate)
	}
	next := homework.Cursor(currentDate)

	rawHomeworks, ok := payload[fieldHomeworks]
	if !ok {
		return nil, homework.SchemaError("missing required field %q", fieldHomeworks)
	}
	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, homework.SchemaError("field %q is not a list", fieldHomeworks)
	}
	if len(homeworks) == 0 {
		return homework.Unchanged{Next: next}, nil
	}

	latest, ok := homeworks[0].(map[string]any)
	if !ok {
		return nil, homework.SchemaError("%s[0] is not an object", fieldHomeworks)
	}

	rawStatus, ok := latest[fieldStatus]
	if !ok {
		return nil, homework.SchemaError("missing required field %q", fieldStatus)
	}
	status, ok := rawStatus.(string)
	if !ok {
		return nil, homework.SchemaError("field %q is not a string", fieldStatus)
	}
	if !homework.Verdicts().Known(homework.Status(status)) {
		return nil, homework.UnknownStatusError(status)
	}

	rawName, ok := latest[fieldHomeworkName]
	if !ok {
		return nil, homework.SchemaError("missing required field %q", fieldHomeworkName)
	}
	name, ok := rawName.(string)
	if !ok || name == "" {
		return nil, homework.SchemaError("field %q must be a non-empty string", fieldHomeworkName)
	}

	return homework.Changed{
		Record: homework.Record{Name: name, Status: homework.Status(status)},
		Next:   next,
	}, nil
}

// asInt64 accepts the number representations produced by encoding/json.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
