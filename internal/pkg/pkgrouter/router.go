package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgerror"
	"github.com/xdanysx/FlightChecker/internal/pkg/pkguid"
)

// HandlerFunc is the shape every endpoint implements. The returned value is
// encoded as JSON unless it is a Binary.
type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

// Binary is returned by handlers that serve raw bytes (images, files).
type Binary struct {
	ContentType string
	Body        []byte
}

type requestIDKey struct{}

// RequestID returns the request id injected by the router, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type Router struct {
	mux *httprouter.Router
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	return &Router{mux: mux, uid: uid}
}

func (rt *Router) GET(path string, handler HandlerFunc) {
	rt.mux.Handler(http.MethodGet, path, rt.wrap(handler))
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (rt *Router) wrap(handler HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := rt.uid.Generate()
		w.Header().Set("X-Request-Id", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)

		result, err := handler(ctx, r.WithContext(ctx))
		if err != nil {
			status := pkgerror.HTTPStatus(err)
			msg := err.Error()
			if status >= http.StatusInternalServerError {
				slog.ErrorContext(ctx, "request failed", "request_id", requestID, "path", r.URL.Path, "error", err)
				msg = "internal server error"
			}
			writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID})
			return
		}

		if binary, ok := result.(Binary); ok {
			w.Header().Set("Content-Type", binary.ContentType)
			w.WriteHeader(http.StatusOK)
			//nolint:errcheck // nothing to do about a failed write here
			w.Write(binary.Body)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // nothing to do about a failed write here
	json.NewEncoder(w).Encode(body)
}
