package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// A returned error is passed to the ErrorHandler given to Wrap.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc builds the response for a request.
type HandlerFunc func(r *http.Request) Response

// ErrorHandler renders an error returned by a Response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Wrap adapts h to http.HandlerFunc. Errors are passed to onErr, or answered
// with a plain 500 when onErr is nil.
func Wrap(h HandlerFunc, onErr ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := resp(w, r); err != nil {
			if onErr == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			onErr(w, r, err)
		}
	}
}
