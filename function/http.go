package function

import (
	"net/http"
	"net/url"
)

// URLQuery adapts url.Values to QueryArgs.
type URLQuery url.Values

// First returns the first value of key.
func (q URLQuery) First(key string) (string, bool) {
	values, ok := q[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ServeHTTP answers with a plain text body and status 200, also on failure.
func (f *Function) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := f.Respond(URLQuery(r.URL.Query()))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
