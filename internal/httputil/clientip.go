package httputil

import (
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders are consulted in order when the server sits behind a proxy.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// ClientIP returns the client address used for stream limits and request
// logs. With trustProxy set, the leftmost X-Forwarded-For entry or X-Real-IP
// wins when it parses as an address; otherwise RemoteAddr is used. Addresses
// are normalised, so an IPv4-mapped IPv6 peer and its IPv4 form share one
// limiter slot.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range proxyHeaders {
			first, _, _ := strings.Cut(r.Header.Get(h), ",")
			if addr, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
				return addr.Unmap().String()
			}
		}
	}
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	if addr, err := netip.ParseAddr(r.RemoteAddr); err == nil {
		return addr.Unmap().String()
	}
	return r.RemoteAddr
}
