package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/samber/lo"
)

// SetResponse encodes body as JSON on success and the wire error shape
// otherwise.
func SetResponse(w http.ResponseWriter, body any, err error) {
	if err != nil {
		awserr.Write(w, err)
		return
	}
	WriteJSONResponse(w, body, http.StatusOK)
}

func SetParseFailureResponse(w http.ResponseWriter, err error) {
	awserr.Write(w, awserr.NewSerialization(err))
}

func WriteJSONResponse(w http.ResponseWriter, body any, code int) {
	w.Header().Set("Content-Type", "application/json")

	// Encode into a buffer first to catch encoding errors before writing the response
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

// decodeBody unmarshals the request body into out. An empty body leaves out
// zero-valued so member validation reports the missing fields.
func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func queryParam(r *http.Request, name string) *string {
	if value := r.URL.Query().Get(name); value != "" {
		return &value
	}
	return nil
}

func queryParamInt32(r *http.Request, name string) (*int32, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, awserr.NewValidation("invalid value %q for query parameter %q", value, name)
	}
	return lo.ToPtr(int32(parsed)), nil
}
