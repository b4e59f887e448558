package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type inputCtxKey struct{}

// prefill sets input values the route derives from the request rather than
// from the client payload.
type prefill func(r *http.Request, in *validators.Input)

// validate decodes the body, query string and path parameters, runs the route
// schema and hands the sanitized input to the handler.
func (h *Handler) validate(schema validators.Validator, prefills ...prefill) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, err := decodeInput(r)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			for _, fill := range prefills {
				fill(r, in)
			}

			if err = schema.Validate(r.Context(), in); err != nil {
				h.writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), inputCtxKey{}, in)))
		})
	}
}

func decodeInput(r *http.Request) (*validators.Input, error) {
	in := &validators.Input{
		Query:  make(map[string]any),
		Params: make(map[string]any),
	}

	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			in.Query[name] = values[0]
		}
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			in.Params[key] = rctx.URLParams.Values[i]
		}
	}

	if r.Body == nil {
		return in, nil
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	in.Body = body

	return in, nil
}

// inputFrom returns the input validated by the route's schema.
func inputFrom(r *http.Request) *validators.Input {
	if in, ok := r.Context().Value(inputCtxKey{}).(*validators.Input); ok {
		return in
	}
	return &validators.Input{}
}

// bind decodes the sanitized body into dst.
func bind(r *http.Request, dst any) error {
	if err := inputFrom(r).DecodeBody(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

func queryValue(in *validators.Input, name string) string {
	value, _ := in.Query[name].(string)
	return value
}

func paramValue(in *validators.Input, name string) string {
	value, _ := in.Params[name].(string)
	return value
}

// listQuery reads the listing filters of the query string.
func listQuery(r *http.Request) (models.ListQuery, error) {
	in := inputFrom(r)
	query := models.ListQuery{FieldOfStudy: models.FieldOfStudy(queryValue(in, "fieldOfStudy"))}

	var err error
	if skip := queryValue(in, "skip"); skip != "" {
		if query.Skip, err = strconv.ParseUint(skip, 10, 64); err != nil {
			return models.ListQuery{}, fmt.Errorf("%w: skip: %w", errInvalidQuery, err)
		}
	}
	if limit := queryValue(in, "limit"); limit != "" {
		if query.Limit, err = strconv.ParseUint(limit, 10, 64); err != nil {
			return models.ListQuery{}, fmt.Errorf("%w: limit: %w", errInvalidQuery, err)
		}
	}
	return query, nil
}

// withAuthenticatedAgency fills the agency of a new job offer with the
// authenticated agency.
func withAuthenticatedAgency(r *http.Request, in *validators.Input) {
	agency, err := actorFrom[*models.Agency](r, utils.AgencyCtxKey)
	if err != nil {
		return
	}
	if in.Body == nil {
		in.Body = make(map[string]any)
	}
	in.Body["agency"] = agency.ID
}
