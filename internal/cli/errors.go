package cli

import (
	"errors"

	"github.com/jacksmith/todo/internal/client"
)

// FormatError returns a user-friendly error message prefixed with "error: ".
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 500 {
		msg = "server error: " + msg
	}
	return "error: " + msg
}
