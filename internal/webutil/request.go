package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go_flashcard_study/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードし、続けて validate タグで検証します。
// 未知のフィールドや複数のJSON値はエラーにします。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", describeDecodeError(err), "", model.ErrInvalidInput)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body must contain a single JSON object.", "", model.ErrInvalidInput)
	}

	return ValidateRequest(dst)
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "Request body contains malformed JSON."
	case errors.As(err, &typeErr):
		return "Field '" + typeErr.Field + "' has an invalid type."
	case errors.As(err, &maxErr):
		return "Request body is too large."
	case errors.Is(err, io.EOF):
		return "Request body is required."
	default:
		// 未知フィールドは "json: unknown field \"x\"" の形で返る
		return "Invalid request body: " + err.Error()
	}
}
