// Package respond writes the JSON envelopes returned by the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

// Success wraps a successful payload.
type Success struct {
	Result any `json:"result"`
}

// Error describes a failed request. Reason is a stable machine-readable
// code, set for domain errors only.
type Error struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func JSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success{Result: data})
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Success{Result: data})
}

func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, Error{Error: err.Error()})
}

// FailWithReason is Fail plus a reason code clients can branch on.
func FailWithReason(w http.ResponseWriter, code int, reason string, err error) {
	JSON(w, code, Error{Error: err.Error(), Reason: reason})
}
