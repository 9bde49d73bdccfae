package tracking

import (
	"net/http"

	"github.com/shopmix/catalog/pkg/types"
)

// Tracking receives the behavioural events the storefront emits. A nil
// implementation is valid, tracking is best effort and never blocks a
// request.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackSearch(sessionId string, state types.FilterState, resultCount int, r *http.Request)
	TrackClickThrough(sessionId string, productId uint, sourceUrl string)
}
