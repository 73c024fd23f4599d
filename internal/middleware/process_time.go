package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// ProcessTime middleware records how long the handler took, in seconds,
// in an X-Process-Time header on every response
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pw := &processTimeWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(pw, r)
	})
}

// processTimeWriter wraps http.ResponseWriter to set the timing header
// just before the response headers are flushed
type processTimeWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (w *processTimeWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		elapsed := time.Since(w.start).Seconds()
		w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', -1, 64))
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *processTimeWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
