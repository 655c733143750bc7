package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/arpalette/core"
	"github.com/yourusername/arpalette/host"
	"github.com/yourusername/arpalette/pkg/arpalette"
	"github.com/yourusername/arpalette/store"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	configPath = ""
	t.Setenv("PORT", "9999")
	t.Setenv("REDIS_ADDR", "redis:6379")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if config.Listen != ":9999" {
		t.Errorf("Listen = %s, want :9999", config.Listen)
	}
	if config.Storage.Backend != store.BackendRedis || config.Storage.Redis.Addr != "redis:6379" {
		t.Errorf("Storage = %+v", config.Storage)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arpalette.yaml")
	os.WriteFile(path, []byte("listen: \":7070\"\nstorage:\n  backend: memory\n"), 0o644)

	configPath = path
	defer func() { configPath = "" }()

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if config.Listen != ":7070" || config.Storage.Backend != store.BackendMemory {
		t.Errorf("config = %+v", config)
	}
}

func TestDescribeCmd(t *testing.T) {
	logger = zap.NewNop()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runDescribe(cmd, nil); err != nil {
		t.Fatalf("runDescribe failed: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 11 {
		t.Errorf("describe printed %d lines, want 11:\n%s", got, out.String())
	}

	out.Reset()
	if err := runDescribe(cmd, []string{"smoothingFactor"}); err != nil {
		t.Fatalf("runDescribe(smoothingFactor) failed: %v", err)
	}
	if !strings.Contains(out.String(), ".2-.8") {
		t.Errorf("help = %q", out.String())
	}

	if err := runDescribe(cmd, []string{"nope"}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestDumpCmd_DoesNotWrite(t *testing.T) {
	logger = zap.NewNop()
	dir := t.TempDir()

	cfg = host.NewConfig()
	cfg.Storage = store.Config{Backend: store.BackendFile, Dir: dir}

	fs := store.NewFileStore(dir)
	stored := core.Document{
		host.UsermodsKey: core.Document{
			arpalette.DefaultName: core.Document{"red_max": 200},
		},
	}
	if err := fs.Set(context.Background(), host.ConfigKey, stored); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	before, _ := os.ReadFile(fs.Path(host.ConfigKey))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	if err := runDump(cmd, nil); err != nil {
		t.Fatalf("runDump failed: %v", err)
	}

	var doc map[string]map[string]map[string]float64
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("dump output is not JSON: %v", err)
	}
	ns := doc[host.UsermodsKey][arpalette.DefaultName]
	if ns["red_max"] != 200 || ns["red_mid"] != 127 {
		t.Errorf("dump = %v", ns)
	}

	after, _ := os.ReadFile(fs.Path(host.ConfigKey))
	if !bytes.Equal(before, after) {
		t.Error("dump modified the stored configuration")
	}
}
