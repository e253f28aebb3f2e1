// Package clientip resolves the address of the client behind an HTTP request.
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	...
//	key := clientip.FromContext(r.Context())
//
// Addresses are normalized so the same client always yields the same string,
// which makes the result usable as a rate limiting key. Proxy headers
// (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are honoured only when
// explicitly trusted.
package clientip
