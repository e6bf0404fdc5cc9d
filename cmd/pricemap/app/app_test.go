package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/logging"
	"github.com/agentstation/pricemap/pkg/sources"
)

func testApp(t *testing.T, config *Config) *App {
	t.Helper()
	logging.Discard(t)

	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithConfig(config), WithLogger(&logger))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

func defaultTestConfig() *Config {
	return &Config{
		UndercutAmount: constants.DefaultUndercutAmount,
		FallbackMargin: constants.DefaultFallbackMargin,
		OutputDir:      ".",
		LogFormat:      "json",
		LogOutput:      "stderr",
	}
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := testApp(t, defaultTestConfig())

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.OutputDir() != "." {
		t.Errorf("OutputDir() = %q, want .", app.OutputDir())
	}
}

// TestApp_PriceMap verifies configured pricing reaches the reconciler.
func TestApp_PriceMap(t *testing.T) {
	config := defaultTestConfig()
	config.UndercutAmount = 20
	app := testApp(t, config)

	pm, err := app.PriceMap()
	if err != nil {
		t.Fatalf("PriceMap() failed: %v", err)
	}

	result, err := pm.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if result.Metadata.UndercutAmount != 20 {
		t.Errorf("UndercutAmount = %v, want 20", result.Metadata.UndercutAmount)
	}
	if result.Slots.Len() != 81 {
		t.Errorf("slots = %d, want 81", result.Slots.Len())
	}
}

// TestApp_PriceMapInvalidConfig verifies invalid pricing is rejected.
func TestApp_PriceMapInvalidConfig(t *testing.T) {
	config := defaultTestConfig()
	config.FallbackMargin = 0
	app := testApp(t, config)

	if _, err := app.PriceMap(); err == nil {
		t.Error("expected error for zero fallback margin")
	}
}

// TestApp_ExecuteVersion verifies the version command runs through the root.
func TestApp_ExecuteVersion(t *testing.T) {
	app := testApp(t, defaultTestConfig())

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	if !strings.Contains(out.String(), "pricemap version 1.0.0") {
		t.Errorf("unexpected version output: %q", out.String())
	}
	if !strings.Contains(out.String(), "commit: abc123") {
		t.Errorf("missing commit: %q", out.String())
	}
}

// TestApp_ExecuteFlags verifies persistent flags update the config.
func TestApp_ExecuteFlags(t *testing.T) {
	app := testApp(t, defaultTestConfig())

	err := app.Execute(context.Background(), []string{"--format", "yaml", "--log-level", "error", "version"})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if app.OutputFormat() != "yaml" {
		t.Errorf("OutputFormat() = %q, want yaml", app.OutputFormat())
	}
	if app.Config().LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", app.Config().LogLevel)
	}
}

// TestApp_EmbeddedIgnoresConfiguredFiles verifies --embedded wins over
// catalog paths from the config file.
func TestApp_EmbeddedIgnoresConfiguredFiles(t *testing.T) {
	config := defaultTestConfig()
	config.CatalogFiles = map[sources.ID]string{
		sources.CostCatalogID: filepath.Join(t.TempDir(), "missing.csv"),
	}
	app := testApp(t, config)

	pm, err := app.PriceMap()
	if err != nil {
		t.Fatalf("PriceMap() failed: %v", err)
	}
	if _, err := pm.Reconcile(context.Background()); err == nil {
		t.Fatal("expected configured cost catalog to be read")
	}

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--log-level", "error", "-o", "json", "list", "prices", "--embedded"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("list prices --embedded failed: %v", err)
	}
	if !strings.Contains(out.String(), `"network": "9MOBILE"`) && !strings.Contains(out.String(), `"network":"9MOBILE"`) {
		t.Errorf("expected embedded slots, got: %.200s", out.String())
	}
}
