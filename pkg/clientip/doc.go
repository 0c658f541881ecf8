// Package clientip extracts the client IP address from HTTP requests.
//
// Proxy headers are trivially spoofed, so they are only read when the direct
// peer (RemoteAddr) is a trusted proxy. Configure those with NewResolver:
//
//	res, err := clientip.NewResolver("10.0.0.0/8", "192.0.2.10")
//	key := "submit:" + res.IP(r)
//
// For a trusted peer, headers are checked in this order and the first valid
// address wins:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (rightmost entry that is not a trusted proxy)
//  4. X-Real-IP
//  5. RemoteAddr
//
// GetIP trusts no proxy and always returns the peer address. Addresses are
// parsed and normalized with net.ParseIP. The unspecified addresses 0.0.0.0
// and :: are rejected. If nothing parses, the raw RemoteAddr is returned.
package clientip
