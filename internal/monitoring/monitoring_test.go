package monitoring

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAccepted(t *testing.T) {
	is := is.New(t)
	s := NewService(Config{})

	s.RecordAccepted("metric", "batch", 12)
	s.RecordAccepted("metric", "single", 1)
	s.RecordAccepted("metric", "batch", 3)

	is.Equal(testutil.ToFloat64(s.accepted.WithLabelValues("metric", "batch")), 15.0)
	is.Equal(testutil.ToFloat64(s.accepted.WithLabelValues("metric", "single")), 1.0)
}

func TestRecordRejected(t *testing.T) {
	is := is.New(t)
	s := NewService(Config{})

	s.RecordRejected("movement", "NegativeValuesNotAllowed")
	s.RecordRejected("movement", "NegativeValuesNotAllowed")

	is.Equal(testutil.ToFloat64(s.rejected.WithLabelValues("movement", "NegativeValuesNotAllowed")), 2.0)
}

func TestHandlerExposesTelemetryMetrics(t *testing.T) {
	is := is.New(t)
	s := NewService(Config{})

	s.RecordAccepted("population", "single", 1)
	s.ObserveStorage("write_population", 15*time.Millisecond)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", s.Path(), nil))
	is.Equal(rec.Code, 200)

	body, err := io.ReadAll(rec.Body)
	is.NoErr(err)
	is.True(strings.Contains(string(body), `telemetry_samples_accepted_total{kind="population",strategy="single"} 1`))
	is.True(strings.Contains(string(body), `telemetry_storage_duration_seconds_count{operation="write_population"} 1`))
}
