package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// CommonParams holds the pagination and search parameters shared by
// the listing endpoints. Q serializes as null when the query string
// did not include it.
type CommonParams struct {
	Q     *string `json:"q"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
}

const (
	defaultSkip  = 0
	defaultLimit = 100
)

type contextKey int

const commonParamsKey contextKey = iota

// CommonQueryParams resolves the shared query parameters once per request
// and injects them into the request context. Handlers retrieve them with
// CommonParamsFromContext. Non-numeric skip/limit values are rejected
// before the handler runs.
func CommonQueryParams(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := CommonParams{
			Skip:  defaultSkip,
			Limit: defaultLimit,
		}

		query := r.URL.Query()

		if query.Has("q") {
			q := query.Get("q")
			params.Q = &q
		}

		if raw := query.Get("skip"); raw != "" {
			skip, err := strconv.Atoi(raw)
			if err != nil || skip < 0 {
				writeParamError(w, "skip must be a non-negative integer")
				return
			}
			params.Skip = skip
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				writeParamError(w, "limit must be a non-negative integer")
				return
			}
			params.Limit = limit
		}

		ctx := context.WithValue(r.Context(), commonParamsKey, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CommonParamsFromContext returns the params resolved by CommonQueryParams.
// When the middleware did not run, the defaults are returned.
func CommonParamsFromContext(ctx context.Context) CommonParams {
	if params, ok := ctx.Value(commonParamsKey).(CommonParams); ok {
		return params
	}
	return CommonParams{Skip: defaultSkip, Limit: defaultLimit}
}

func writeParamError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
