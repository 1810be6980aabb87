package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxDetailRunes = 200

func errorMessage(status int, contentType string, body []byte) string {
	if status >= 400 && status < 500 && strings.Contains(contentType, "application/json") {
		if detail := extractDetail(body); detail != "" {
			return fmt.Sprintf("API Error: %d %s", status, detail)
		}
	}
	return fmt.Sprintf("API Error: %d %s", status, http.StatusText(status))
}

// extractDetail reads the "detail" string, falling back to "message" when
// detail is absent or null. Non-string values yield "".
func extractDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	r := gjson.GetBytes(body, "detail")
	if !r.Exists() || r.Type == gjson.Null {
		r = gjson.GetBytes(body, "message")
	}
	if r.Type != gjson.String {
		return ""
	}

	collapsed := strings.Join(strings.Fields(r.Str), " ")
	runes := []rune(collapsed)
	if len(runes) > maxDetailRunes {
		collapsed = string(runes[:maxDetailRunes])
	}
	return collapsed
}
