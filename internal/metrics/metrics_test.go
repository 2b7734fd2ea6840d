package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAccumulate(t *testing.T) {
	m := New(TransactionNames)

	m.Created.Inc()
	m.Created.Inc()
	m.Errors.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Created))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Retrieved))
}

func TestHandlerExposesTextFormat(t *testing.T) {
	m := New(NotificationNames)
	m.Created.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "notifications_sent_total 1")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New(TransactionNames)
	b := New(TransactionNames)

	a.Created.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Created))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Created))
}
