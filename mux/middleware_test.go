package mux

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterUse(t *testing.T) {
	t.Run("applies middleware in registration order", func(t *testing.T) {
		r := NewRouter()
		var order []string
		for _, name := range []string{"first", "second"} {
			name := name
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, req)
				})
			})
		}
		r.HandleFunc("/test", func(_ http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("wrapped handler is cached per route", func(t *testing.T) {
		r := NewRouter()
		wraps := 0
		r.Use(func(next http.Handler) http.Handler {
			wraps++
			return next
		})
		r.HandleFunc("/test", func(_ http.ResponseWriter, _ *http.Request) {})

		for i := 0; i < 3; i++ {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
		}
		assert.Equal(t, 1, wraps)
	})

	t.Run("not applied to unmatched requests", func(t *testing.T) {
		r := NewRouter()
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("X-MW", "yes")
				next.ServeHTTP(w, req)
			})
		})
		r.HandleFunc("/test", func(_ http.ResponseWriter, _ *http.Request) {})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Header().Get("X-MW"))
	})

	t.Run("middleware can short-circuit", func(t *testing.T) {
		r := NewRouter()
		r.Use(func(_ http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})
		})
		r.HandleFunc("/test", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "should not reach")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestCORSMethodMiddleware(t *testing.T) {
	t.Run("lists the full method set of the path", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodGet)
		r.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)
		r.Use(CORSMethodMiddleware(r))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
		assert.Equal(t, "GET,HEAD,OPTIONS,POST", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("typed placeholder paths", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/users/<int:id>", func(_ http.ResponseWriter, _ *http.Request) {}).
			Methods(http.MethodPut, http.MethodDelete)
		r.Use(CORSMethodMiddleware(r))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/5", nil))
		assert.Equal(t, "DELETE,OPTIONS,PUT", w.Header().Get("Access-Control-Allow-Methods"))
	})
}
