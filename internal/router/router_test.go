package router_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"uidgen/internal/router"
	"uidgen/internal/service"
	"uidgen/pkg/uid"
)

// Полный путь запроса: роутер -> хендлер -> сервис -> генератор.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gen, err := uid.New(context.Background(), uid.DefaultConfig(), uid.StaticAssigner(42), uid.WithLogger(logger))
	if err != nil {
		t.Fatalf("uid.New ошибка: %v", err)
	}

	srv := httptest.NewServer(router.New(service.NewUIDService(gen, nil), logger))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: декодирование: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestRoutes_GenerateThenParse(t *testing.T) {
	srv := newServer(t)

	var gen struct {
		UID    string `json:"uid"`
		Base62 string `json:"base62"`
	}
	if code := getJSON(t, srv.URL+"/api/v1/uid", &gen); code != http.StatusOK {
		t.Fatalf("генерация: статус = %d", code)
	}

	var parsed struct {
		Parsed map[string]string `json:"parsed"`
	}
	if code := getJSON(t, srv.URL+"/api/v1/uid/"+gen.Base62+"?enc=base62", &parsed); code != http.StatusOK {
		t.Fatalf("разбор: статус = %d", code)
	}
	if parsed.Parsed["UID"] != gen.UID {
		t.Errorf("UID = %q, ожидался %q", parsed.Parsed["UID"], gen.UID)
	}
	if parsed.Parsed["workerId"] != "42" {
		t.Errorf("workerId = %q, ожидался 42", parsed.Parsed["workerId"])
	}
}

func TestRoutes_Batch(t *testing.T) {
	srv := newServer(t)

	var batch struct {
		UIDs []string `json:"uids"`
	}
	if code := getJSON(t, srv.URL+"/api/v1/uid/batch?count=50", &batch); code != http.StatusOK {
		t.Fatalf("статус = %d", code)
	}

	seen := make(map[string]bool)
	for _, id := range batch.UIDs {
		if seen[id] {
			t.Fatalf("дубликат %s", id)
		}
		seen[id] = true
	}
	if len(seen) != 50 {
		t.Errorf("уникальных uid = %d, ожидалось 50", len(seen))
	}
}

func TestRoutes_Health(t *testing.T) {
	srv := newServer(t)

	if code := getJSON(t, srv.URL+"/health", nil); code != http.StatusOK {
		t.Errorf("статус = %d, ожидался %d", code, http.StatusOK)
	}
}

func TestRoutes_ParseRejectsNonCanonicalText(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{
		"/api/v1/uid/%21%21?enc=base32",
		"/api/v1/uid/OOO?enc=base58",
		"/api/v1/uid/zzzzzzzzzzzzzzzzzzzzzz?enc=base58",
		"/api/v1/uid/000000000001?enc=base62",
	} {
		t.Run(path, func(t *testing.T) {
			if code := getJSON(t, srv.URL+path, nil); code != http.StatusBadRequest {
				t.Errorf("статус = %d, ожидался %d", code, http.StatusBadRequest)
			}
		})
	}
}
