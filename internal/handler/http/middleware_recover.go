package http

import (
	"net/http"
	"runtime/debug"
)

// withRecovery is the outermost stage of the pipeline. It converts a panic
// raised anywhere downstream into a 500 response with a fixed JSON body and
// logs the panic value with a stack trace. Internal details never reach the
// client.
//
// If the downstream handler already wrote a status line the response cannot
// be replaced; the panic is still logged and swallowed. [http.ErrAbortHandler]
// is re-panicked so that net/http aborts the connection as documented.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			writeInternalError(rw)
		}()

		next.ServeHTTP(rw, r)
	})
}
