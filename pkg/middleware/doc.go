// Package middleware provides HTTP middleware for the toastkit server.
//
// This package includes:
//   - OpenTelemetry request tracing middleware
//   - Prometheus request metrics middleware
//
// Both are plain func(http.Handler) http.Handler values and plug into a chi
// router with Use. Route labels come from the matched chi route pattern,
// so label cardinality stays bounded.
//
// # OpenTelemetry Middleware
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("toastkit"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The span is stored in the request context, so handlers starting their
// own spans (such as toast.Show) nest under it.
//
// # Prometheus Metrics
//
//	r.Use(middleware.Prometheus(
//	    middleware.WithRegistry(reg),
//	))
//
// Metrics collected:
//   - toastkit_http_requests_total: Counter by route, method and status
//   - toastkit_http_request_duration_seconds: Histogram by route and method
package middleware
