package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizdash/internal/platform/validate"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func decodeBody(t *testing.T, body string) (payload, error) {
	t.Helper()
	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err := DecodeJSON(httptest.NewRecorder(), req, &p)
	return p, err
}

func TestDecodeJSON(t *testing.T) {
	p, err := decodeBody(t, `{"name":"widget","count":3}`)
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "widget", Count: 3}, p)

	_, err = decodeBody(t, ``)
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, []validate.FieldError{{Path: "body", Message: "request body is required"}}, validate.Fields(err))

	_, err = decodeBody(t, `{"name":`)
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, "body", validate.Fields(err)[0].Path)

	_, err = decodeBody(t, `{"count":"three"}`)
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, []validate.FieldError{{Path: "count", Message: "expected int"}}, validate.Fields(err))
}

func TestParseID(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want int64
		err  bool
	}{
		"positive": {raw: "42", want: 42},
		"zero":     {raw: "0", err: true},
		"negative": {raw: "-1", err: true},
		"alpha":    {raw: "abc", err: true},
		"overflow": {raw: "99999999999999999999", err: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.raw)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := ParseID(req, "id")
			if tc.err {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	rr := httptest.NewRecorder()
	Invalid(rr, "Validation error", []validate.FieldError{{Path: "email", Message: "is required"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Validation error","details":[{"path":"email","message":"is required"}]}`, rr.Body.String())

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	Internal(rr, req, nil, errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
}
