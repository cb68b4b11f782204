package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"cnpj-lookup/internal/common/errors"
)

const maxRequestBytes = 64 << 10

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func sendJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sendErr answers with the status and code carried by err.
func sendErr(w http.ResponseWriter, err error) {
	stdErr := errors.Normalize(err)
	sendJSON(w, errors.ToHTTPStatus(stdErr.Code), ResponseError{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewInputParseError(fmt.Errorf("decode request body: %w", err))
	}
	return nil
}
