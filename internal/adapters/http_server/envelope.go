package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_api/internal/domain"
)

const (
	msgSuccess = "success"
	msgError   = "error"
)

// envelope is the uniform response body; RespCode mirrors the HTTP status.
type envelope struct {
	RespCode    int    `json:"RespCode"`
	RespMessage string `json:"RespMessage"`
	Result      any    `json:"Result"`
}

func writeEnvelope(w http.ResponseWriter, status int, result any) {
	msg := msgSuccess
	if status >= http.StatusBadRequest {
		msg = msgError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{RespCode: status, RespMessage: msg, Result: result}); err != nil {
		log.Error().Err(err).Msg("write JSON envelope failed")
	}
}

// writeError maps validation failures to 400 and everything else to 500,
// echoing the raw error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrInvalidBody) {
		status = http.StatusBadRequest
	} else {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeEnvelope(w, status, err.Error())
}
