package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sports-academy/server/internal/config"
	"github.com/sports-academy/server/internal/service/auth"
	"github.com/sports-academy/server/internal/service/payment"
	"github.com/sports-academy/server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application with store and payment doubles and
// a real token service, so the gated routes exercise actual signing and
// verification end to end.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, LogLevel: "info"},
		Auth: config.AuthConfig{
			TokenSecret:          "test-secret",
			TokenLifetimeMinutes: 120,
		},
	}

	return &application{
		config: cfg,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),

		users:      &store.MockUserStore{},
		classes:    &store.MockClassStore{},
		selections: &store.MockSelectionStore{},
		payLog:     nil,

		tokens:   auth.NewTokenService(cfg.Auth),
		payments: &payment.MockService{ClientSecret: "pi_test_secret"},
	}
}

// issueToken runs the real session flow: POST the identity to /jwt and pull
// the signed token out of the response.
func issueToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder,
		httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_GatedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/role?email=a@example.com"},
		{http.MethodGet, "/selectedClass/a@example.com"},
		{http.MethodDelete, "/selectedClass/66f0c1"},
	}

	for _, route := range gated {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, recorder.Body.String())
		})
	}
}

func TestRouter_GatedRoutesRejectBadTokens(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/role?email=a@example.com"},
		{http.MethodGet, "/selectedClass/a@example.com"},
		{http.MethodDelete, "/selectedClass/66f0c1"},
	}

	for _, route := range gated {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, recorder.Body.String())
		})
	}
}

func TestRouter_IssuedTokenOpensGatedRoutes(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()
	token := issueToken(t, router, "student@example.com")

	req := httptest.NewRequest(http.MethodGet, "/role?email=student@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "{}", recorder.Body.String())
}

func TestRouter_GateDoesNotMatchIdentity(t *testing.T) {
	t.Parallel()

	// Any valid token opens any gated route; the path or query email is not
	// compared against the token's identity.
	router := newTestApplication(t).setupRouter()
	token := issueToken(t, router, "someone@example.com")

	req := httptest.NewRequest(http.MethodGet, "/selectedClass/other@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestRouter_UngatedRoutesAreOpen(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	open := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/users", ""},
		{http.MethodPost, "/users", `{"email":"a@example.com"}`},
		{http.MethodPut, "/users/66f0a1", `{"role":"admin"}`},
		{http.MethodGet, "/instructor", ""},
		{http.MethodGet, "/popularinstractor", ""},
		{http.MethodPost, "/class", `{"name":"Archery"}`},
		{http.MethodGet, "/class", ""},
		{http.MethodGet, "/class/i@example.com", ""},
		{http.MethodPut, "/singleClass/66f0b1", `{"status":"approve"}`},
		{http.MethodGet, "/classSingle/66f0b1", ""},
		{http.MethodGet, "/approveClass", ""},
		{http.MethodGet, "/popularClass", ""},
		{http.MethodPost, "/selectedClass", `{"studentEmail":"s@example.com"}`},
		{http.MethodGet, "/singleSelect/66f0c1", ""},
		{http.MethodPut, "/singleSelect/66f0c1", `{"payment":true}`},
		{http.MethodPost, "/create-payment-intent", `{"price":19.99}`},
	}

	for _, route := range open {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			var body io.Reader
			if route.body != "" {
				body = bytes.NewReader([]byte(route.body))
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, body))

			assert.Equal(t, http.StatusOK, recorder.Code,
				"route should answer without a token")
		})
	}
}

func TestRouter_DuplicateUserFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	registered := map[string]store.Document{}
	app.users = &store.MockUserStore{
		FindByEmailFunc: func(ctx context.Context, email string) (store.Document, error) {
			if doc, ok := registered[email]; ok {
				return doc, nil
			}
			return nil, store.ErrNotFound
		},
		InsertFunc: func(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
			email, _ := doc["email"].(string)
			registered[email] = doc
			return &store.InsertResult{InsertedID: "66f0a9"}, nil
		},
	}
	router := app.setupRouter()

	payload := `{"email":"dup@example.com","name":"Dup"}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first,
		httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(payload))))
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"insertedId":"66f0a9"}`, first.Body.String())

	second := httptest.NewRecorder()
	router.ServeHTTP(second,
		httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(payload))))
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"message":"user already exists"}`, second.Body.String())
}

func TestRouter_Liveness(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Hello World!", recorder.Body.String())
}

func TestRouter_PaymentIntent(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	payments := &payment.MockService{ClientSecret: "pi_test_secret"}
	app.payments = payments
	router := app.setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/create-payment-intent", bytes.NewReader([]byte(`{"price":19.99}`))))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_test_secret"}`, recorder.Body.String())
	require.Len(t, payments.Prices, 1)
	assert.Equal(t, 19.99, payments.Prices[0])
}
