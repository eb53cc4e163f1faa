package response

import (
	"encoding/json"
	"net/http"

	"mdent-api/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

// ErrorBody is the stable JSON shape every failure is rendered as. Clients
// always get a JSON object with an "error" key, never an HTML page or a
// stack trace.
type ErrorBody struct {
	Error   string             `json:"error"`
	Message string             `json:"message,omitempty"`
	Issues  []apperrors.Issue  `json:"issues,omitempty"`
	Meta    map[string]string  `json:"meta,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// FromError is the single terminal stage translating any raised failure into
// a response. Unrecognized errors are logged with their cause and rendered as
// an opaque internal_error.
func FromError(log *logrus.Logger, w http.ResponseWriter, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	status := appErr.Status()
	entry := log.WithFields(logrus.Fields{
		"error_kind": string(appErr.Kind),
		"status":     status,
	})
	if status >= http.StatusInternalServerError {
		entry.Errorf("request failed: %+v", err)
	} else {
		entry.Warnf("request rejected: %v", err)
	}

	body := ErrorBody{
		Error: string(appErr.Kind),
		Meta:  appErr.Meta,
	}
	// Internal detail never reaches the client.
	if appErr.Kind != apperrors.KindInternal {
		body.Message = appErr.Message
		body.Issues = appErr.Issues
	}

	JSON(w, status, body)
}
