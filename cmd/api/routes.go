package main

import (
	"context"
	"net/http"
	"time"

	"locallibrary/internal/auth"
	"locallibrary/internal/author"
	"locallibrary/internal/book"
	"locallibrary/internal/bookinstance"
	"locallibrary/internal/genre"
	"locallibrary/internal/home"
	"locallibrary/internal/httpx"
	"locallibrary/internal/user"
)

type handlers struct {
	auth         *auth.HTTPHandler
	user         *user.HTTPHandler
	home         *home.HTTPHandler
	genre        *genre.HTTPHandler
	author       *author.HTTPHandler
	book         *book.HTTPHandler
	bookInstance *bookinstance.HTTPHandler
}

// newRouter registers every route. Each handler is instrumented under its
// pattern so metric labels stay bounded.
func newRouter(h handlers, metrics *httpx.Metrics, ready func(context.Context) error, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, metrics.Instrument(pattern, fn))
	}
	// signedIn routes answer 401 to anonymous callers before the handler runs.
	signedIn := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, metrics.Instrument(pattern, httpx.RequireUser(fn)))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	handle("POST /accounts/login", h.auth.Login)
	signedIn("POST /accounts/logout", h.auth.Logout)
	handle("POST /accounts/register", h.user.Register)
	signedIn("GET /accounts/me", h.user.Me)

	handle("GET /catalog/{$}", h.home.Index)

	handle("GET /catalog/genres", h.genre.List)
	handle("GET /catalog/genres/{id}", h.genre.Detail)

	handle("GET /catalog/authors", h.author.List)
	handle("GET /catalog/authors/{id}", h.author.Detail)
	handle("GET /catalog/author/create", h.author.CreateForm)
	handle("POST /catalog/author/create", h.author.Create)
	handle("GET /catalog/author/{id}/update", h.author.UpdateForm)
	handle("POST /catalog/author/{id}/update", h.author.Update)
	handle("GET /catalog/author/{id}/delete", h.author.DeleteConfirm)
	handle("POST /catalog/author/{id}/delete", h.author.Delete)

	handle("GET /catalog/books", h.book.List)
	handle("GET /catalog/books/{id}", h.book.Detail)
	handle("GET /catalog/book/create", h.book.CreateForm)
	handle("POST /catalog/book/create", h.book.Create)
	handle("GET /catalog/book/{id}/update", h.book.UpdateForm)
	handle("POST /catalog/book/{id}/update", h.book.Update)
	handle("GET /catalog/book/{id}/delete", h.book.DeleteConfirm)
	handle("POST /catalog/book/{id}/delete", h.book.Delete)
	handle("GET /catalog/isbn/{isbn}", h.book.LookupISBN)

	handle("GET /catalog/bookinstances/{id}", h.bookInstance.Detail)
	handle("GET /catalog/book/{id}/renew", h.bookInstance.RenewForm)
	handle("POST /catalog/book/{id}/renew", h.bookInstance.Renew)
	handle("GET /catalog/borrowed", h.bookInstance.Borrowed)
	signedIn("GET /catalog/mybooks", h.bookInstance.MyBooks)

	return mux
}
