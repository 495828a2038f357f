package throttle

import (
	"net/http"
	"time"

	"github.com/zeptools/docgen/requests"
	"github.com/zeptools/docgen/responses"
)

// ByClientIP - HandlerWrapper consuming one token from the group's bucket
// keyed by the caller's IP. Blocked requests get 429
type ByClientIP struct {
	Store   *BucketStore[string]
	GroupID string
}

func (t *ByClientIP) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.Store.Allow(t.GroupID, requests.GetClientIP(r), time.Now()) {
			responses.WriteSimpleErrorJSON(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		inner.ServeHTTP(w, r)
	})
}
