// package services implements HTTP clients for the three upstream APIs
//
// GitHub (GraphQL), Spotify (OAuth2 + REST), WakaTime (REST)
package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jaedonvisva/folio/internal/shared"
)

// defaultClient is used when a caller does not supply an *http.Client.
// Outbound calls are single best-effort attempts; the timeout is the only
// guard against a hung upstream.
var defaultClient = &http.Client{Timeout: 10 * time.Second}

// decodeJSON decodes an HTTP response body into result, wrapping failures
// as API request errors.
func decodeJSON(resp *http.Response, result any) error {
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}
	return nil
}

// okStatus reports whether the response status is in the 2xx range.
func okStatus(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
