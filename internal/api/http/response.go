package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/jekabolt/lottery-manager/internal/form"
	"google.golang.org/grpc/status"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type validator interface {
	Validate() error
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// writeError renders err with the http status of its grpc code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())
	if code >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	writeJSON(w, code, errorResponse{
		Error:   message(st),
		Details: form.Violations(err),
	})
}

// message strips the grpc prefix that wrapped status errors carry in their text.
func message(st *status.Status) string {
	msg := st.Message()
	if strings.HasPrefix(msg, "rpc error:") {
		if i := strings.Index(msg, "desc = "); i >= 0 {
			return msg[i+len("desc = "):]
		}
	}
	return msg
}

// decode reads a json body into v and validates it. An empty body is
// validated as the zero request.
func decode(r *http.Request, v validator) error {
	if r.Body != nil {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return gerr.InvalidArgument("malformed request body: %v", err)
		}
	}
	return v.Validate()
}
