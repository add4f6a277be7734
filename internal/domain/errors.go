package domain

import "errors"

var ErrUnknownTier = errors.New("unknown tier")

// UnavailableError reports a payload without a usable results list.
type UnavailableError struct {
	Detail string
}

func (e *UnavailableError) Error() string {
	if e.Detail == "" {
		return "launch data unavailable"
	}
	return "launch data unavailable: " + e.Detail
}

const (
	MessageUnavailable = "Unable to fetch upcoming launches."
	MessageInvalidTier = "Invalid size parameter."
	MessageNoLaunches  = "No upcoming launches."
)

// FallbackMessage maps a pipeline error to the text a renderer shows instead
// of a model. The second value is the detail line, if any.
func FallbackMessage(err error) (string, string) {
	var ue *UnavailableError
	switch {
	case errors.As(err, &ue):
		return MessageUnavailable, ue.Detail
	case errors.Is(err, ErrUnknownTier):
		return MessageInvalidTier, ""
	default:
		return MessageUnavailable, err.Error()
	}
}
