package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "ok", StatusLabel(nil))
	assert.Equal(t, "error", StatusLabel(errors.New("x")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	SettingsUpdatesTotal.Inc()
	LoginTotal.WithLabelValues("success").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "olilab_settings_updates_total")
	assert.Contains(t, rec.Body.String(), `olilab_login_total{result="success"}`)
}

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(SessionRestoreTotal.WithLabelValues(RestoreStale))
	SessionRestoreTotal.WithLabelValues(RestoreStale).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SessionRestoreTotal.WithLabelValues(RestoreStale)))
}
