package handler

import (
	"net"
	"net/http"
	"strings"
)

// ClientIdentity picks the rate-limit key for a request: the first entry of
// X-Forwarded-For, else the connection address, else a fixed sentinel.
func ClientIdentity(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		if identity := strings.TrimSpace(fwd); identity != "" {
			return identity
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}

	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}
