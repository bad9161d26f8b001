package main

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/intl/middlewares"
	"github.com/dmitrymomot/intl/pkg/intl"
	"github.com/dmitrymomot/intl/pkg/userlang"
)

const (
	userIDHeader = "X-User-ID"
	userIDCookie = "user_id"
	langCookie   = "lang"
)

type server struct {
	base        *intl.Config
	cache       *intl.FormatterCache
	store       userlang.Store
	log         *slog.Logger
	now         func() time.Time
	checks      checks
	userTimeout time.Duration
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(s.log)),
	)

	r.Get("/health/live", liveness)
	r.Get("/health/ready", readiness(s.checks, s.log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Intl(s.base, s.cache,
			middlewares.WithNegotiator(middlewares.FirstOf(middlewares.FromCookie(langCookie), intl.Negotiate)),
			middlewares.WithUserResolver(s.resolveUser),
			middlewares.WithUserLanguageTimeout(s.userTimeout),
			middlewares.WithIntlLogger(s.log),
			middlewares.WithIntlOptions(intl.WithClock(s.now)),
		))

		r.Get("/", s.index)
		r.Post("/language", s.setLanguage)
	})

	return r
}

func (s *server) resolveUser(r *http.Request) (middlewares.User, bool) {
	id, ok := requestUserID(r)
	if !ok {
		return nil, false
	}
	return userlang.User(s.store, id), true
}

func requestUserID(r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		if c, err := r.Cookie(userIDCookie); err == nil {
			raw = c.Value
		}
	}
	if raw == "" {
		return uuid.Nil, false
	}

	id, err := userlang.ParseUserID(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	i := middlewares.GetIntl(r.Context())

	view, err := newIndexView(i, s.now(), r.URL.Query().Get("name"), r.URL.Query().Get("saved") != "")
	if err != nil {
		s.log.ErrorContext(r.Context(), "rendering index", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	templ.Handler(indexPage(view)).ServeHTTP(w, r)
}

// setLanguage stores the chosen language for identified users and in the
// lang cookie for everyone else.
func (s *server) setLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("lang")
	if !slices.Contains(s.base.AvailableLocales, code) {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}

	if id, ok := requestUserID(r); ok {
		if err := s.store.SetLanguage(r.Context(), id, code); err != nil {
			s.log.ErrorContext(r.Context(), "saving language preference",
				slog.String("user_id", id.String()),
				slog.Any("error", err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     langCookie,
			Value:    code,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	http.Redirect(w, r, "/?saved=1", http.StatusSeeOther)
}
