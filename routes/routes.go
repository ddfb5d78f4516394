package routes

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vip25/site/app"
	"github.com/vip25/site/clientip"
	"github.com/vip25/site/httpx"
	"github.com/vip25/site/ratelimit"
	"github.com/vip25/site/routes/middlewares"
	"github.com/vip25/site/web"
)

var marketingPages = []string{"/", "/home", "/about", "/services", "/why", "/how", "/contact-form"}

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)
	root.Use(middlewares.SecurityHeaders)

	// Global limits apply to every route, keyed by client address.
	// Per-route limits below use a key scoped to the route as well, so
	// submitting a client form does not eat into the career budget.
	byIP := func(r *http.Request) string { return clientip.FromRequest(r) }
	byIPAndRoute := func(r *http.Request) string { return clientip.FromRequest(r) + ":" + r.URL.Path }

	root.Use(
		ratelimit.Middleware(mustLimiter(app.DailyLimit, 24*time.Hour), byIP),
		ratelimit.Middleware(mustLimiter(app.HourlyLimit, time.Hour), byIP),
	)

	for _, path := range marketingPages {
		root.Get(path, HomePage())
	}
	root.Get("/career", CareerPage())
	root.Handle("/static/*", http.StripPrefix("/static/", web.Static()))

	submits := mustLimiter(app.SubmitLimit, time.Minute)
	root.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware(submits, byIPAndRoute))
		r.Post("/api/client", SubmitClientForm(app))
		r.Post("/api/career", SubmitCareerForm(app))
	})

	root.Get("/login", LoginPage())
	root.Post("/login", Login(app))
	root.Get("/logout", Logout(app))

	exports := mustLimiter(app.ExportLimit, time.Minute)
	root.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAdmin(app.Manager))
		r.Get("/admin", Dashboard(app))
		r.With(ratelimit.Middleware(exports, byIPAndRoute)).
			Get("/admin/export/clients", ExportClients(app))
		r.With(ratelimit.Middleware(exports, byIPAndRoute)).
			Get("/admin/export/careers", ExportCareers(app))
	})

	return root
}

func mustLimiter(limit int, window time.Duration) ratelimit.Limiter {
	limiter, err := ratelimit.NewSlidingWindow(limit, window)
	if err != nil {
		panic(err)
	}
	return limiter
}

// renderHTML executes the named template into a buffer first, so a
// template fault yields a clean 500 instead of a half-written page.
func renderHTML(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := web.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		httpx.LogInternalError(w, "render."+name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
