package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"

	"github.com/replykit/reply"
)

// IANA defined IPv4 non-public ranges.
var privateSubnets = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the IP address in the *http.Request.Header
// and promotes it to *http.Request.Context under [reply.IpAddrKey].
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := IPAddress(r.Header)
			ctx := context.WithValue(r.Context(), reply.IpAddrKey, ip)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// IPAddress parses the "X-Forwarded-For" and "X-Real-Ip" headers
// for the public IP address closest to the server's proxy,
// skipping addresses from non-public ranges.
func IPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address;
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			raw := strings.TrimSpace(addresses[i])
			addr, err := netip.ParseAddr(raw)
			if err != nil || !addr.IsGlobalUnicast() || isPrivateSubnet(addr) {
				continue
			}
			return raw
		}
	}

	return "0.0.0.0"
}

// isPrivateSubnet checks whether the IPv4 address is in a private subnet.
func isPrivateSubnet(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}

	for _, p := range privateSubnets {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}
