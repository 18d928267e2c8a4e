package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/sdankbar/jaqumal-graph/pkg/errors"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errs.UserMessage(err),
	}})
}

// statusFor maps pipeline error codes onto HTTP statuses. Engine output
// failures read as a bad upstream, a missing engine binary as the
// service being unavailable.
func statusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrCodeNotFound), errs.Is(err, errs.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrCodeEngineMissing), errs.Is(err, errs.ErrCodeStoreUnavailable):
		return http.StatusServiceUnavailable
	case errs.Is(err, errs.ErrCodeEngineIO), errs.Is(err, errs.ErrCodeParseTokens), errs.Is(err, errs.ErrCodeParseNumber):
		return http.StatusBadGateway
	case errs.Is(err, errs.ErrCodeLayoutIncomplete), errs.Is(err, errs.ErrCodeInternal):
		return http.StatusInternalServerError
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
