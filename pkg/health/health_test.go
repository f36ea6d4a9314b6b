package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/health"
)

func ok(context.Context) error { return nil }

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, health.StatusHealthy, health.Run(context.Background(), nil).Status)
	})

	t.Run("one failing check", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"locale":   ok,
			"timezone": func(context.Context) error { return errors.New("unknown timezone") },
		})
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["locale"].Status)
		assert.Equal(t, "unknown timezone", resp.Checks["timezone"].Error)
	})

	t.Run("timeout cancels context", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
	})
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("readiness json", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"i18n": func(context.Context) error { return errors.New("no catalogs") },
		})
		req := httptest.NewRequest(http.MethodGet, "/?format=json", nil)
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, "no catalogs", resp.Checks["i18n"].Error)
	})

	t.Run("readiness text", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"i18n": ok})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}
