package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	var calls int
	status := http.StatusInternalServerError

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"totalUsers":1}`))
	})

	call := func() *httptest.ResponseRecorder {
		r, err := http.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
		require.NoError(t, err)
		r.RequestURI = "/v1/admin/stats"

		w := httptest.NewRecorder()
		h(w, r)
		return w
	}

	// failed responses are not cached
	require.Equal(t, http.StatusInternalServerError, call().Code)

	status = http.StatusOK
	require.Equal(t, http.StatusOK, call().Code)

	w := call()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"totalUsers":1}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, calls)
}
