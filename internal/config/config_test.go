package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "bistro.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	g := cfg.Game
	if g.TickRate != 100*time.Millisecond || g.DayDuration != 90 || g.InitialTarget != 100 {
		t.Fatalf("unexpected game defaults: %+v", g)
	}
	if g.OrderSpawnRate != 0.008 || g.MaxActiveOrders != 3 || g.BurnAfter != 0 {
		t.Fatalf("unexpected game defaults: %+v", g)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("token ttl=%v", cfg.Auth.TokenTTL)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yml := []byte(`port: "9090"
db:
  path: /tmp/kitchen.db
game:
  day_duration_seconds: 30
  burn_after_ms: 4000
peer:
  action_burst: 5
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BISTRO_CHEF_NAME", "Remy")
	t.Setenv("BISTRO_GAME_MAX_ACTIVE_ORDERS", "5")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/kitchen.db" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Game.DayDuration != 30 || cfg.Game.BurnAfter != 4*time.Second {
		t.Fatalf("game values not applied: %+v", cfg.Game)
	}
	if cfg.Peer.ActionBurst != 5 {
		t.Fatalf("peer burst=%d", cfg.Peer.ActionBurst)
	}
	if cfg.ChefName != "Remy" || cfg.Game.MaxActiveOrders != 5 {
		t.Fatalf("env overrides not applied: chef=%q orders=%d", cfg.ChefName, cfg.Game.MaxActiveOrders)
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("port: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
