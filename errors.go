package pulse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is the single error contract of the gateway: one human-readable
// message derived from whatever shape the backend returned. The HTTP status
// is retained for diagnostics, but callers are expected to branch on nothing
// beyond the message.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Message
}

func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	return APIError{
		Status:  resp.StatusCode,
		Message: normalizeMessage(resp.StatusCode, data),
	}
}

// normalizeMessage reduces the backend's heterogeneous error bodies to one
// string. Recognized shapes, first match wins:
//
//  1. {"detail": "..."}                       -> the detail string
//  2. {"detail": {"message": "..."}}          -> the nested message
//  3. {"message": "..."}                      -> the top-level message
//  4. {"detail": [{"msg": "..."}, ...]}       -> msg values joined with " | "
//
// Anything else falls back to "HTTP <status>".
func normalizeMessage(status int, data []byte) string {
	fallback := fmt.Sprintf("HTTP %d", status)
	if len(data) == 0 {
		return fallback
	}
	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fallback
	}
	if len(body.Detail) > 0 {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil && s != "" {
			return s
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Detail, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}
	if len(body.Message) > 0 {
		var s string
		if err := json.Unmarshal(body.Message, &s); err == nil && s != "" {
			return s
		}
	}
	if len(body.Detail) > 0 {
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, " | ")
			}
		}
	}
	return fallback
}
