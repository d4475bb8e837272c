package expertise

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/profile"); got != "/profile/api/expertise" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("profile"); got != "/profile/api/expertise" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/profile/", WithRoutePath("api/skills")); got != "/profile/api/skills" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != "/api/expertise" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/profile", WithLabels("Go"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/profile/api/expertise" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=go&limit=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/profile"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_RegistersWithItsOptions(t *testing.T) {
	c := New(WithLabels("Go", "Rust"), WithRoutePath("/skills"))
	mux := http.NewServeMux()

	pattern, err := c.RegisterRoutes(mux, "/api")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pattern != "/api/skills" || c.MountPath("/api") != pattern {
		t.Fatalf("unexpected pattern %q", pattern)
	}
	if c.Options().SearchParam != "q" {
		t.Fatalf("expected defaults to be applied")
	}

	_, payload := serve(t, mux, http.MethodGet, pattern+"?q=r")
	if len(payload.Data) != 1 || payload.Data[0].Label != "Rust" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
