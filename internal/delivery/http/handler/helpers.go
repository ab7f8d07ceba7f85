package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/pkg/response"
	"teleradiology-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxJSONBody = 1 << 20

// decodeAndValidate writes the 400 response itself and reports whether the
// handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badBody(w, err)
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

// decodeOptional is decodeAndValidate for endpoints whose body may be empty.
func decodeOptional(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		badBody(w, err)
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func badBody(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		response.Error(w, http.StatusBadRequest, "Request body too large", nil)
		return
	}
	response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
}

func pathUUID(w http.ResponseWriter, r *http.Request, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+label+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actorID is the authenticated caller; routes using it sit behind Authenticate.
func actorID(r *http.Request) uuid.UUID {
	id, _ := middleware.GetUserIDFromContext(r.Context())
	return id
}

func queryUUID(q url.Values, key string) *uuid.UUID {
	id, err := uuid.Parse(q.Get(key))
	if err != nil {
		return nil
	}
	return &id
}

func queryInt(q url.Values, key string) *int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return nil
	}
	return &n
}

func queryBool(q url.Values, key string) *bool {
	b, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return nil
	}
	return &b
}

// queryDateRange parses from/to as YYYY-MM-DD. The upper bound is exclusive,
// so "to" is moved to the start of the following day.
func queryDateRange(q url.Values) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if s := q.Get("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, false
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, true
}
