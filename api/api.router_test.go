package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/api/middleware"
	"github.com/itsatony/w4b_v3/server/telemetry/api/resources"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/service"
	"github.com/matryer/is"
)

const validToken = "device-token"

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type apiError struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func testRouter(store *repository.StoragePortMock) *Router {
	svc := service.New(store, time.UTC, nil, func() time.Time { return fixedNow })
	res := resources.NewResources(svc, 1<<20)
	res.SetHealthCheck(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	validator := &middleware.TokenValidatorMock{
		ValidateFunc: func(ctx context.Context, token string) (string, error) {
			if token == validToken {
				return "user-1", nil
			}
			return "", middleware.ErrInvalidToken
		},
	}
	return NewRouter(res, middleware.NewAuthMiddleware(validator, false))
}

func okStore() *repository.StoragePortMock {
	return &repository.StoragePortMock{
		ExecuteFunc: func(ctx context.Context, stmt repository.Statement) error { return nil },
		QueryFunc:   func(ctx context.Context, dest any, stmt repository.Statement) error { return nil },
	}
}

func do(router http.Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/health", "", false)
	is.Equal(rec.Code, http.StatusOK)
}

func TestSwaggerDocIsServed(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/swagger/doc.json", "", false)
	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), "/iot/v1/metrics"))
}

func TestIngestRequiresToken(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/iot/v1/metrics",
		`{"hiveId":"1","fields":{"weightKg":40}}`, false)

	is.Equal(rec.Code, http.StatusUnauthorized)
	is.Equal(len(store.ExecuteCalls()), 0)
}

func TestPostMetricsSingle(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/iot/v1/metrics",
		`{"hiveId":"123","fields":{"temperatureCelsius":21.5}}`, true)

	is.Equal(rec.Code, http.StatusOK)
	is.Equal(strings.TrimSpace(rec.Body.String()), `{"message":"OK"}`)
	is.Equal(len(store.ExecuteCalls()), 1)
}

func TestPostMetricsEmptyFieldsIsRejected(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/iot/v1/metrics",
		`{"hiveId":"123","fields":{}}`, true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4002)
	is.True(body.Error != "")
	is.Equal(len(store.ExecuteCalls()), 0)
}

func TestPostMovementArrayIsOneStatement(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/entrance/v1/movement",
		`[{"hiveId":1,"boxId":7,"beesIn":5,"beesOut":3},{"hiveId":1,"boxId":7,"beesIn":0,"beesOut":0}]`, true)

	is.Equal(rec.Code, http.StatusOK)
	calls := store.ExecuteCalls()
	is.Equal(len(calls), 1)
	is.Equal(len(calls[0].Stmt.Args), 22)
}

func TestPostMovementNegativeIsRejected(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/entrance/v1/movement",
		`{"hiveId":1,"boxId":7,"beesIn":-1,"beesOut":3}`, true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4006)
	is.Equal(len(store.ExecuteCalls()), 0)
}

func TestPostEmptyArrayIsRejected(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodPost, "/population/v1/metrics", `[]`, true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4005)
}

func TestPostMalformedBody(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodPost, "/iot/v1/metrics", `{"hiveId":`, true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4000)
}

func TestPostLegacyMetric(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodPost, "/metric",
		`{"hive_id":"9","fields":{"weight_kg":41.2}}`, true)

	is.Equal(rec.Code, http.StatusOK)
	calls := store.ExecuteCalls()
	is.Equal(len(calls), 1)
	is.True(strings.HasPrefix(calls[0].Stmt.Query, "INSERT INTO beehive_metrics"))
	is.Equal(calls[0].Stmt.Args[1], "9")
}

func TestStorageFailureIsInternal(t *testing.T) {
	is := is.New(t)
	store := &repository.StoragePortMock{
		ExecuteFunc: func(ctx context.Context, stmt repository.Statement) error {
			return context.DeadlineExceeded
		},
	}
	rec := do(testRouter(store), http.MethodPost, "/population/v1/metrics",
		`{"hiveId":"1","fields":{"beeCount":12000}}`, true)

	is.Equal(rec.Code, http.StatusInternalServerError)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 5000)
	is.True(!strings.Contains(body.Error, "deadline"))
}

func TestGetSeries(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodGet, "/api/v1/hives/12/series/weightKg?rangeMin=120", "", true)

	is.Equal(rec.Code, http.StatusOK)
	is.Equal(strings.TrimSpace(rec.Body.String()), `[]`)

	calls := store.QueryCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Stmt.Args[0], "12")
	is.Equal(calls[0].Stmt.Args[1], fixedNow.Add(-120*time.Minute))
}

func TestGetSeriesUnknownField(t *testing.T) {
	is := is.New(t)
	store := okStore()
	rec := do(testRouter(store), http.MethodGet, "/api/v1/hives/12/series/bogus", "", true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4007)
	is.Equal(len(store.QueryCalls()), 0)
}

func TestGetSeriesBadQueryParam(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/api/v1/hives/12/series/weightKg?rangeMin=abc", "", true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4000)
}

func TestGetMovementTodayRequiresBox(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/api/v1/hives/12/movement/today", "", true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4004)
}

func TestGetMovementRangeInverted(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/api/v1/hives/12/movement?timeFrom=2000&timeTo=1000", "", true)

	is.Equal(rec.Code, http.StatusBadRequest)
	var body apiError
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Code, 4003)
}

func TestGetWeightTrendInvalidAggregation(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/api/v1/hives/12/weight?aggregation=MEDIAN", "", true)

	is.Equal(rec.Code, http.StatusBadRequest)
}

func TestGetPopulationWithoutToken(t *testing.T) {
	is := is.New(t)
	rec := do(testRouter(okStore()), http.MethodGet, "/api/v1/hives/12/population", "", false)
	is.Equal(rec.Code, http.StatusUnauthorized)
}
