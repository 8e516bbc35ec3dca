package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRequestsCarryBearerAndCorrelationID(t *testing.T) {
	var gotAuth, gotReqID string
	r := chi.NewRouter()
	r.Get("/api/stations", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotReqID = req.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]Station{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Token: func() string { return "tok123" }})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.ListStations(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("X-Request-ID missing")
	}
}

func TestLoginNeverCarriesAuthorization(t *testing.T) {
	var gotAuth string
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(LoginResponse{AccessToken: "t", User: User{ID: 1}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Token: func() string { return "eski-token" }})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Login(context.Background(), "a", "b"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("login carried Authorization %q", gotAuth)
	}
}

func TestNonSuccessMapsToRequestErrorWithServerMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Hisobot tayyor emas"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.Stats(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if reqErr.Status != http.StatusUnprocessableEntity || reqErr.Message != "Hisobot tayyor emas" {
		t.Fatalf("reqErr = %+v", reqErr)
	}
}

func TestRequestErrorFallsBackWhenBodyUndecodable(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.Stats(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if reqErr.Error() == "" {
		t.Fatal("fallback message empty")
	}
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Me(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	client, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.ListStations(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestCheckFilterQueryOmitsZeroValues(t *testing.T) {
	q := CheckFilter{StationID: 3, Status: "pending"}.Query()
	if q.Get("stationId") != "3" || q.Get("status") != "pending" {
		t.Fatalf("query = %v", q)
	}
	if q.Has("operatorId") {
		t.Fatalf("zero operator leaked into query: %v", q)
	}
}
