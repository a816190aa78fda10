package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-dashboard/internal/config"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "fpl-dashboard-api",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheTTL:           time.Minute,
		ViewCacheSize:      4,
		DefaultPalette:     "Viridis",
		FPLBaseURL:         "http://127.0.0.1:1",
		FPLTimeout:         time.Second,
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_DefaultPaletteFromConfig(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/palettes", nil))
	if !strings.Contains(rec.Body.String(), `"default":"Viridis"`) {
		t.Fatalf("expected Viridis as default palette, got %s", rec.Body.String())
	}
}

func TestNewHTTPServer_RejectsUnknownDefaultPalette(t *testing.T) {
	cfg := testConfig(t)
	cfg.DefaultPalette = "Rainbow"

	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for an undeclared default palette")
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""

	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestLoadPaletteCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.toml")
	content := "default = \"Mono\"\n\n[[palette]]\nname = \"Mono\"\ncolors = [\"#000000\", \"#ffffff\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog, err := loadPaletteCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if catalog.DefaultName() != "Mono" {
		t.Fatalf("unexpected default palette %q", catalog.DefaultName())
	}

	if _, err := loadPaletteCatalog(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for a missing catalog file")
	}
}
