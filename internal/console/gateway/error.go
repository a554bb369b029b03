package gateway

// Kind classifies a failed API call. Every failure the console ever sees is
// one of these plus a human-readable message; transport-level error shapes
// stop at this boundary.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindTimeout      Kind = "TIMEOUT"
	KindNetwork      Kind = "NETWORK"
	KindUnexpected   Kind = "UNEXPECTED"
)

// fallbackMessage covers error responses without a usable message field.
const fallbackMessage = "Unexpected error occurred"

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func kindFromStatus(status int) Kind {
	switch status {
	case 400, 422:
		return KindValidation
	case 401:
		return KindUnauthorized
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	default:
		return KindUnexpected
	}
}
