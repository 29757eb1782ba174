// Package httpcookie binds pkg/storage to net/http requests and responses.
//
//	r := chi.NewRouter()
//	r.Use(httpcookie.Middleware(storage.WithDefaults(opts...)))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		cookies, _ := httpcookie.FromContext(r.Context())
//		theme, err := cookies.Get("theme")
//		...
//	})
//
// The storage reads the request's Cookie headers and appends Set-Cookie
// headers to the response, so writes must happen before the body is written.
package httpcookie
