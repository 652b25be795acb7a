package server

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"lapangin-web/api"
	"lapangin-web/config"
)

// statusRecorder captures what a handler wrote for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Printf("[HTTP] %s %s %d %dB %s", r.Method, r.URL.RequestURI(), rec.status, rec.bytes, time.Since(start))
	})
}

// forwardCredentials attaches the browser's session and CSRF cookies to the
// request context so backend calls act as the same user. Unsafe methods are
// forwarded only when the page echoed the cookie's token back, either in the
// csrfmiddlewaretoken form field or the X-CSRFToken header. A browser without
// a usable token cookie is issued one on its next safe request.
func forwardCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds api.Credentials
		if c, err := r.Cookie(config.SESSION_COOKIE_NAME); err == nil {
			creds.SessionID = c.Value
		}
		if c, err := r.Cookie(config.CSRF_COOKIE_NAME); err == nil && validCSRFToken(c.Value) {
			creds.CSRFToken = c.Value
		}

		if !safeMethod(r.Method) {
			if !csrfTokenMatches(r, creds.CSRFToken) {
				log.Printf("[CSRF] Rejected %s %s from origin %q", r.Method, r.URL.Path, r.Header.Get("Origin"))
				http.Error(w, "CSRF verification failed", http.StatusForbidden)
				return
			}
		} else if creds.CSRFToken == "" {
			creds.CSRFToken = newCSRFToken()
			http.SetCookie(w, &http.Cookie{
				Name:     config.CSRF_COOKIE_NAME,
				Value:    creds.CSRFToken,
				Path:     "/",
				MaxAge:   config.CSRF_COOKIE_MAX_AGE,
				SameSite: http.SameSiteLaxMode,
			})
		}

		r = r.WithContext(api.WithCredentials(r.Context(), creds))
		next.ServeHTTP(w, r)
	})
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// csrfTokenMatches compares the submitted token with the cookie's in
// constant time. A missing cookie never matches.
func csrfTokenMatches(r *http.Request, cookieToken string) bool {
	if cookieToken == "" {
		return false
	}
	submitted := r.Header.Get(config.CSRF_HEADER_NAME)
	if submitted == "" {
		submitted = r.PostFormValue(config.CSRF_FORM_FIELD)
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(cookieToken)) == 1
}

// newCSRFToken returns 32 hex characters, a length the backend accepts as a
// cookie token.
func newCSRFToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func validCSRFToken(token string) bool {
	if len(token) != 32 && len(token) != 64 {
		return false
	}
	for _, c := range token {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
