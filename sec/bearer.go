package sec

import (
	"log"
	"net/http"

	"github.com/zeptools/docgen/responses"
)

func ExtractBearerToken(header string) string {
	const prefix = "Bearer "
	prefixLen := len(prefix)
	if len(header) > prefixLen && header[:prefixLen] == prefix {
		return header[prefixLen:]
	}
	return ""
}

// BearerAuth - HandlerWrapper rejecting requests without a valid HS256-signed
// bearer token. Optional guard, enabled per deployment via config
type BearerAuth struct {
	Secret []byte
}

func (a *BearerAuth) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signedToken := ExtractBearerToken(r.Header.Get("Authorization"))
		if signedToken == "" {
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		parsedToken, err := ParseHMACSignedToken(signedToken, a.Secret)
		if err != nil || !parsedToken.Valid {
			log.Printf("[WARN][Sec] rejected bearer token: %v", err)
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		inner.ServeHTTP(w, r)
	})
}
