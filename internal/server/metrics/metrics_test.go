package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Recorder = (*Collector)(nil)
var _ Recorder = Nop{}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAccountCreated()
	c.RecordLogin(true)
	c.RecordLogin(false)
	c.RecordLogin(false)
	c.RecordResetToken(ResetIssued)
	c.RecordResetToken(ResetExpired)
	c.RecordSlugRetry()
	c.RecordSlugConflict()
	c.RecordView()
	c.RecordView()
	c.RecordRPC("/presskit.v1.PressKitService/Login", "OK")

	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_accounts_created_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_logins_total", map[string]string{"result": "success"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "presskit_logins_total", map[string]string{"result": "failure"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_reset_tokens_total", map[string]string{"event": ResetExpired}))
	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_slug_retries_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_slug_conflicts_total", nil))
	assert.Equal(t, 2.0, counterValue(t, reg, "presskit_views_recorded_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "presskit_grpc_requests_total",
		map[string]string{"method": "/presskit.v1.PressKitService/Login", "code": "OK"}))
}

func TestNewCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)
	assert.Panics(t, func() { _ = NewCollector(reg) })
}

func TestRouter_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordView()

	rec := httptest.NewRecorder()
	NewRouter(reg, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "presskit_views_recorded_total 1")
}

func TestRouter_Healthz(t *testing.T) {
	reg := prometheus.NewRegistry()

	rec := httptest.NewRecorder()
	NewRouter(reg, func(context.Context) error { return nil }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	NewRouter(reg, func(context.Context) error { return errors.New("db down") }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(prometheus.NewRegistry(), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
