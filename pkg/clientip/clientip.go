package clientip

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ErrInvalidProxy is returned for a trusted proxy that is neither an IP nor a CIDR.
var ErrInvalidProxy = errors.New("clientip: invalid trusted proxy")

// headers in priority order.
var headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts client addresses. Proxy headers are honoured only when
// the direct peer is one of the trusted proxies.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver returns a Resolver trusting the given IPs and CIDR ranges.
// With no proxies, headers are ignored and RemoteAddr is used.
func NewResolver(trustedProxies ...string) (*Resolver, error) {
	r := &Resolver{}
	for _, p := range trustedProxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			addr, err := netip.ParseAddr(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidProxy, p, err)
			}
			r.trusted = append(r.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidProxy, p, err)
		}
		r.trusted = append(r.trusted, prefix.Masked())
	}
	return r, nil
}

var direct = &Resolver{}

// GetIP returns the peer address of r. Proxy headers are ignored; use a
// Resolver with trusted proxies when running behind a load balancer.
func GetIP(r *http.Request) string {
	return direct.IP(r)
}

// IP returns the client address of req. Falls back to the raw RemoteAddr
// when nothing parses.
func (res *Resolver) IP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}
	peer := normalize(host)
	if peer == "" {
		return req.RemoteAddr
	}
	if !res.isTrusted(peer) {
		return peer
	}

	for _, h := range headers {
		v := req.Header.Get(h)
		if v == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			if ip := res.forwardedFor(v); ip != "" {
				return ip
			}
			continue
		}
		if ip := normalize(v); ip != "" {
			return ip
		}
	}
	return peer
}

// forwardedFor walks "client, proxy1, proxy2" from the right and returns the
// first hop that is not a trusted proxy. A malformed hop yields "".
func (res *Resolver) forwardedFor(v string) string {
	hops := strings.Split(v, ",")
	var last string
	for i := len(hops) - 1; i >= 0; i-- {
		ip := normalize(hops[i])
		if ip == "" {
			return ""
		}
		if !res.isTrusted(ip) {
			return ip
		}
		last = ip
	}
	return last
}

func (res *Resolver) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range res.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
