package httpapi

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const unknownCountry = "ZZ"

// Edge headers are trusted ahead of the socket address; the first one that
// parses wins.
var (
	clientIPHeaders = []string{"Fly-Client-IP", "CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}
	countryHeaders  = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "X-AppEngine-Country", "CloudFront-Viewer-Country"}
)

// Cloudflare reports Tor exits as T1 and unknown as XX.
var pseudoCountries = map[string]struct{}{"XX": {}, "T1": {}}

func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if addr, ok := parseClientAddr(firstForwarded(r.Header.Get(header))); ok {
			return addr.String()
		}
	}
	if addr, ok := parseClientAddr(r.RemoteAddr); ok {
		return addr.String()
	}
	return ""
}

// resolveCountryCode returns an ISO alpha-2 code, or ZZ when no CDN header
// names a real country.
func resolveCountryCode(r *http.Request) string {
	for _, header := range countryHeaders {
		if code, ok := parseCountry(r.Header.Get(header)); ok {
			return code
		}
	}
	return unknownCountry
}

func firstForwarded(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}

func parseClientAddr(raw string) (netip.Addr, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return netip.Addr{}, false
	}
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap().WithZone(""), true
}

func parseCountry(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", false
	}
	if _, pseudo := pseudoCountries[code]; pseudo {
		return "", false
	}
	return code, true
}
