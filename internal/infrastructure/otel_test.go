package infrastructure

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestInitializeOTel_PrometheusExposition(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    "test",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		TraceExporter:  "none",
		MetricExporter: "prometheus",
		SampleRatio:    1,
	}, testLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	require.NotNil(t, providers.PrometheusHTTP)

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.KPIComputations.Add(context.Background(), 2)
	metrics.HTTPRequestsTotal.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("route", "/api/kpis")))

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kpi_computations_total")
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestInitializeOTel_CanRunTwice(t *testing.T) {
	for i := 0; i < 2; i++ {
		providers, err := InitializeOTel(DefaultOTelConfig(), testLogger())
		require.NoError(t, err)
		require.NoError(t, providers.Shutdown(context.Background()))
	}
}

func TestInitializeOTel_Disabled(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{TraceExporter: "none", MetricExporter: "none"}, testLogger())
	require.NoError(t, err)

	assert.Nil(t, providers.PrometheusHTTP)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.Tracer)

	_, err = CreateBusinessMetrics(providers.Meter)
	assert.NoError(t, err)
}

func TestInitializeOTel_UnsupportedExporter(t *testing.T) {
	_, err := InitializeOTel(&OTelConfig{TraceExporter: "jaeger", MetricExporter: "none"}, testLogger())
	assert.Error(t, err)

	_, err = InitializeOTel(&OTelConfig{TraceExporter: "none", MetricExporter: "statsd"}, testLogger())
	assert.Error(t, err)
}

func TestNoopBusinessMetrics(t *testing.T) {
	m := NoopBusinessMetrics()
	require.NotNil(t, m)
	m.EmptyAggregates.Add(context.Background(), 1)
}
