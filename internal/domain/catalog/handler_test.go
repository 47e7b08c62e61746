package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type testRecorder struct {
	bySession map[string]MedicationRecord
}

func newTestRecorder() *testRecorder {
	return &testRecorder{bySession: map[string]MedicationRecord{}}
}

func (r *testRecorder) Record(ctx context.Context, sessionID string, rec MedicationRecord) error {
	r.bySession[sessionID] = rec
	return nil
}

func newCatalogServer(t *testing.T, svc *Service, rec SelectionRecorder) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil)) // modo dev: claims por headers
	RegisterRoutes(r, svc, rec)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doGet(t *testing.T, url, sessionID string) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Debug-Session-ID", sessionID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestSearchHandler_RecordsFirstMatchAsSelection(t *testing.T) {
	rec := newTestRecorder()
	ts := newCatalogServer(t, NewService(testCatalog()), rec)

	if st := doGet(t, ts.URL+"/catalog/search?q=para", "sess-1"); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	got, ok := rec.bySession["sess-1"]
	if !ok {
		t.Fatalf("expected search to record a selection")
	}
	if got.Name != "Paracetamol" {
		t.Fatalf("expected first match recorded, got %q", got.Name)
	}
}

func TestSearchHandler_NoMatchRecordsNothing(t *testing.T) {
	rec := newTestRecorder()
	ts := newCatalogServer(t, NewService(testCatalog()), rec)

	if st := doGet(t, ts.URL+"/catalog/search?q=zzz", "sess-1"); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if len(rec.bySession) != 0 {
		t.Fatalf("no match must not touch the selection, got %#v", rec.bySession)
	}
}

func TestSearchHandler_RequiresSession(t *testing.T) {
	ts := newCatalogServer(t, NewService(testCatalog()), newTestRecorder())

	resp, err := http.Get(ts.URL + "/catalog/search?q=para")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}
