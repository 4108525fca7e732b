package middleware

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkdate/spark/internal/api"
)

func TestLogger(t *testing.T) {
	var called bool

	h := chimiddleware.RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.NotNil(t, api.GetLogger(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})))

	r, err := http.NewRequest(http.MethodGet, "/v1/profile", nil)
	require.NoError(t, err)
	r.Header.Set("X-Forwarded-For", "10.0.0.1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestBodyLimiter(t *testing.T) {
	h := BodyLimiter(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := ioutil.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tt := []struct {
		body  string
		rcode int
	}{
		{body: "1234", rcode: http.StatusOK},
		{body: "12345", rcode: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range tt {
		r, err := http.NewRequest(http.MethodPost, "/v1/swipes", strings.NewReader(tc.body))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, tc.rcode, w.Code, tc.body)
	}
}
