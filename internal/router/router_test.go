package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-tracker/internal/adapters/auth/static"
	"med-tracker/internal/domain/catalog"
	"med-tracker/internal/ports/auth"
	"med-tracker/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sessions := static.New()
	if err := sessions.Register("prime", "password", auth.RolePrime); err != nil {
		t.Fatalf("seeding prime user: %v", err)
	}
	if err := sessions.Register("elite", "password_pls", auth.RoleElite); err != nil {
		t.Fatalf("seeding elite user: %v", err)
	}

	catalogSvc := catalog.NewService([]catalog.MedicationRecord{
		{Name: "Paracetamol", TherapeuticClass: "Analgesic", Uses: []string{"fever"}},
		{Name: "Ibuprofen", TherapeuticClass: "NSAID"},
	})

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Sessions: sessions,
		Catalog:  catalogSvc,
	}))
	t.Cleanup(ts.Close)

	return ts
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func startSession(t *testing.T, baseURL string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/session", "", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating session, got %d body=%s", st, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		t.Fatalf("bad session response: %s", body)
	}
	return out.Token
}

func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, body)
	}
	var out struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		t.Fatalf("bad login response: %s", body)
	}
	return out.Token
}

func TestHTTP_AnonymousTier_SearchInventoryReminders(t *testing.T) {
	ts := newTestServer(t)
	token := startSession(t, ts.URL)

	// sin token no hay nada
	{
		st, _ := doReq(t, ts.URL, "GET", "/inventory/", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// búsqueda + selección implícita
	{
		st, body := doReq(t, ts.URL, "GET", "/catalog/search?q=para", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, body)
		}
		var out []map[string]any
		_ = json.Unmarshal(body, &out)
		if len(out) != 1 || out[0]["name"] != "Paracetamol" {
			t.Fatalf("unexpected search result: %s", body)
		}

		st, body = doReq(t, ts.URL, "GET", "/me/selection", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected selection recorded by search, got %d body=%s", st, body)
		}
	}

	// inventario y reminder con wrap
	{
		st, body := doReq(t, ts.URL, "POST", "/inventory/", token, map[string]any{
			"name": "Paracetamol", "quantity": 10,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 inventory add, got %d body=%s", st, body)
		}

		st, body = doReq(t, ts.URL, "POST", "/reminders/", token, map[string]any{
			"medication_name": "Paracetamol", "first_dose": "22:00", "interval_hours": 4,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 reminder, got %d body=%s", st, body)
		}
		var rem struct {
			NextDose string `json:"next_dose"`
		}
		_ = json.Unmarshal(body, &rem)
		if rem.NextDose != "02:00" {
			t.Fatalf("expected next_dose 02:00, got %q", rem.NextDose)
		}
	}

	// intervalo corto rechazado
	{
		st, _ := doReq(t, ts.URL, "POST", "/reminders/", token, map[string]any{
			"medication_name": "Paracetamol", "first_dose": "08:00", "interval_hours": 3,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for interval 3, got %d", st)
		}
	}

	// tier gratuito: ni delivery ni family plan
	{
		st, _ := doReq(t, ts.URL, "GET", "/orders/", token, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 orders for anonymous, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/family/", token, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 family for anonymous, got %d", st)
		}
	}
}

func TestHTTP_Scan_ReportsNotImplemented(t *testing.T) {
	ts := newTestServer(t)
	token := startSession(t, ts.URL)

	st, body := doReq(t, ts.URL, "POST", "/scan", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 scan, got %d body=%s", st, body)
	}
	var out struct {
		Status string          `json:"status"`
		Record json.RawMessage `json:"record"`
	}
	_ = json.Unmarshal(body, &out)
	if out.Status != "not_implemented" {
		t.Fatalf("expected not_implemented, got %q", out.Status)
	}
	if len(out.Record) != 0 && string(out.Record) != "null" {
		t.Fatalf("scan without model must not return a record: %s", body)
	}
}

func TestHTTP_PrimeTier_Orders(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "prime", "password")

	// sin prescripción: rechazado y no queda en historial
	{
		st, _ := doReq(t, ts.URL, "POST", "/orders/", token, map[string]any{
			"item": "Paracetamol", "quantity": 3, "has_prescription": false,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without prescription, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/orders/", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 order history, got %d", st)
		}
		var out []any
		_ = json.Unmarshal(body, &out)
		if len(out) != 0 {
			t.Fatalf("rejected order must not append history: %s", body)
		}
	}

	// con prescripción: total = qty*unit + 5
	{
		st, body := doReq(t, ts.URL, "POST", "/orders/", token, map[string]any{
			"item": "Paracetamol", "quantity": 2, "has_prescription": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 order, got %d body=%s", st, body)
		}
		var o struct {
			Quantity     int `json:"quantity"`
			CostPerUnit  int `json:"cost_per_unit"`
			DeliveryCost int `json:"delivery_cost"`
			TotalCost    int `json:"total_cost"`
		}
		_ = json.Unmarshal(body, &o)
		if o.DeliveryCost != 5 {
			t.Fatalf("expected delivery 5, got %d", o.DeliveryCost)
		}
		if o.CostPerUnit < 5 || o.CostPerUnit > 50 {
			t.Fatalf("unit cost out of [5,50]: %d", o.CostPerUnit)
		}
		if o.TotalCost != o.Quantity*o.CostPerUnit+o.DeliveryCost {
			t.Fatalf("inconsistent total: %+v", o)
		}
	}

	// prime no llega al family plan
	{
		st, _ := doReq(t, ts.URL, "GET", "/family/", token, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 family for prime, got %d", st)
		}
	}
}

func TestHTTP_EliteTier_FamilyPlan(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "elite", "password_pls")

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		st, body := doReq(t, ts.URL, "POST", "/family/", token, map[string]any{
			"name": name, "age": 30, "relationship": "sibling",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adding %s, got %d body=%s", name, st, body)
		}
	}

	// el sexto rebota y la lista queda en 5
	{
		st, _ := doReq(t, ts.URL, "POST", "/family/", token, map[string]any{
			"name": "F", "age": 30,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on 6th member, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/family/", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 family list, got %d", st)
		}
		var out []map[string]any
		_ = json.Unmarshal(body, &out)
		if len(out) != 5 {
			t.Fatalf("expected 5 members, got %d", len(out))
		}
	}

	// borrado posicional con corrimiento
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/family/1", token, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}

		_, body := doReq(t, ts.URL, "GET", "/family/", token, nil)
		var out []map[string]any
		_ = json.Unmarshal(body, &out)
		if len(out) != 4 || out[1]["name"] != "C" {
			t.Fatalf("expected shift after delete, got %s", body)
		}
	}
}

func TestHTTP_PlanPurchase_UpgradesSession(t *testing.T) {
	ts := newTestServer(t)
	token := startSession(t, ts.URL)

	// listado público de planes
	{
		st, body := doReq(t, ts.URL, "GET", "/plans/", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 plans, got %d", st)
		}
		var out []map[string]any
		_ = json.Unmarshal(body, &out)
		if len(out) != 2 {
			t.Fatalf("expected 2 plans, got %s", body)
		}
	}

	// anónimo compra elite y el family plan se habilita
	{
		st, body := doReq(t, ts.URL, "POST", "/plans/elite/purchase", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 purchase, got %d body=%s", st, body)
		}

		st, _ = doReq(t, ts.URL, "GET", "/family/", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected family access after elite purchase, got %d", st)
		}
	}

	// elite -> prime es downgrade
	{
		st, _ := doReq(t, ts.URL, "POST", "/plans/prime/purchase", token, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on downgrade, got %d", st)
		}
	}
}

func TestHTTP_SessionIsolation(t *testing.T) {
	ts := newTestServer(t)
	tokenA := startSession(t, ts.URL)
	tokenB := startSession(t, ts.URL)

	st, _ := doReq(t, ts.URL, "POST", "/inventory/", tokenA, map[string]any{
		"name": "Paracetamol", "quantity": 1,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 inventory add, got %d", st)
	}

	_, body := doReq(t, ts.URL, "GET", "/inventory/", tokenB, nil)
	var out []any
	_ = json.Unmarshal(body, &out)
	if len(out) != 0 {
		t.Fatalf("session B must not see session A inventory: %s", body)
	}
}
