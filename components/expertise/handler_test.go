package expertise

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func serve(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, handlerResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if rec.Code == http.StatusOK && method == http.MethodGet {
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return rec, payload
}

func TestNewHandler_EmptyCatalogReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler()

	rec, payload := serve(t, h, http.MethodGet, "/api/expertise")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := strings.TrimSpace(rec.Header().Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_EmptyQueryListsEveryUnselectedOption(t *testing.T) {
	h := NewHandler(WithCatalog(optionset.Catalog{Options: []optionset.Option{
		{Label: "Alpha", Value: "a"},
		{Label: "Beta", Selected: true},
		{Label: "Gamma"},
	}}))

	_, payload := serve(t, h, http.MethodGet, "/api/expertise?q=")
	want := []Option{{Value: "a", Label: "Alpha"}, {Value: "Gamma", Label: "Gamma"}}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_CaseInsensitiveSubstringWithExclusions(t *testing.T) {
	h := NewHandler(WithLabels("Go", "Google Cloud", "MongoDB", "Rust"))

	_, payload := serve(t, h, http.MethodGet, "/api/expertise?q=GO&selected=Google+Cloud")
	want := []Option{{Value: "Go", Label: "Go"}, {Value: "MongoDB", Label: "MongoDB"}}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_SearchAndLimitClamped(t *testing.T) {
	h := NewHandler(
		WithLabels("Data engineering", "Data science", "Databases", "Design"),
		WithMaxLimit(2),
	)

	_, payload := serve(t, h, http.MethodGet, "/api/expertise?q=data&limit=10")
	want := []Option{
		{Value: "Data engineering", Label: "Data engineering"},
		{Value: "Data science", Label: "Data science"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithLabels("Go", "Rust"),
		WithSearchParam("search"),
		WithSelectedParam("skip"),
		WithLimitParam("l"),
	)

	_, payload := serve(t, h, http.MethodGet, "/api/expertise?search=&skip=Go&l=5")
	if len(payload.Data) != 1 || payload.Data[0].Label != "Rust" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(WithLabels("Go"))

	rec, payload := serve(t, h, http.MethodGet, "/api/expertise?q=go&limit=-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_LabelsAreEscapedInJSON(t *testing.T) {
	h := NewHandler(WithLabels("<b>C++</b>"))

	req := httptest.NewRequest(http.MethodGet, "/api/expertise?q=c", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "<b>") {
		t.Fatalf("expected markup to be escaped, got %s", rec.Body.String())
	}
	var payload handlerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data[0].Label != "<b>C++</b>" {
		t.Fatalf("expected label to round trip, got %q", payload.Data[0].Label)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithLabels("Go"),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	rec, _ := serve(t, h, http.MethodGet, "/api/expertise?q=go")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithLabels("Go"))

	rec, _ := serve(t, h, http.MethodPost, "/api/expertise?q=go")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestNewHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler(WithLabels("Go"))

	rec, _ := serve(t, h, http.MethodHead, "/api/expertise?q=go")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestNewHandler_LogsServedQueries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewHandler(WithLabels("Go", "Rust"), WithLogger(zap.New(core)))

	serve(t, h, http.MethodGet, "/api/expertise?q=ru&selected=Go")

	entries := logs.FilterMessage("suggestions served").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["query"] != "ru" || fields["results"] != int64(1) || fields["excluded"] != int64(1) {
		t.Fatalf("unexpected log fields: %#v", fields)
	}
}
