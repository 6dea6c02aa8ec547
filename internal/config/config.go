// Package config loads application settings through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pixel_bistro/internal/engine"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BISTRO_DB_PATH.
const EnvPrefix = "BISTRO"

// Config is the resolved application configuration.
type Config struct {
	Port     string
	LogLevel string
	DBPath   string
	ChefName string
	Game     engine.Config
	Peer     PeerConfig
	Auth     AuthConfig
}

// PeerConfig tunes the host/client link.
type PeerConfig struct {
	HostURL     string
	ActionRate  float64 // inbound frames per second
	ActionBurst int
}

// AuthConfig holds token settings.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

func setDefaults(v *viper.Viper) {
	d := engine.DefaultConfig()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", "bistro.db")
	v.SetDefault("chef.name", "Chef")

	v.SetDefault("game.tick_rate_ms", d.TickRate.Milliseconds())
	v.SetDefault("game.day_duration_seconds", d.DayDuration)
	v.SetDefault("game.initial_money", d.InitialMoney)
	v.SetDefault("game.initial_target", d.InitialTarget)
	v.SetDefault("game.target_increase_per_day", d.TargetIncreasePerDay)
	v.SetDefault("game.target_day_scale", d.TargetDayScale)
	v.SetDefault("game.max_hygiene", d.MaxHygiene)
	v.SetDefault("game.hygiene_decay_rate", d.HygieneDecayRate)
	v.SetDefault("game.patience_decay_rate", d.PatienceDecayRate)
	v.SetDefault("game.order_spawn_rate", d.OrderSpawnRate)
	v.SetDefault("game.max_active_orders", d.MaxActiveOrders)
	v.SetDefault("game.station_count", d.StationCount)
	v.SetDefault("game.burn_after_ms", 0)

	v.SetDefault("peer.host_url", "ws://localhost:8080")
	v.SetDefault("peer.action_rate", 20.0)
	v.SetDefault("peer.action_burst", 40)

	v.SetDefault("auth.signing_key", "pixel-bistro-dev-key")
	v.SetDefault("auth.token_ttl", "12h")
}

// Load reads config.yml from the given directories (configs/ when none are
// given) and applies BISTRO_* environment overrides. A missing file is not an
// error; defaults apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log_level"),
		DBPath:   v.GetString("db.path"),
		ChefName: v.GetString("chef.name"),
		Game: engine.Config{
			TickRate:             time.Duration(v.GetInt64("game.tick_rate_ms")) * time.Millisecond,
			DayDuration:          v.GetInt("game.day_duration_seconds"),
			InitialMoney:         v.GetInt("game.initial_money"),
			InitialTarget:        v.GetInt("game.initial_target"),
			TargetIncreasePerDay: v.GetInt("game.target_increase_per_day"),
			TargetDayScale:       v.GetInt("game.target_day_scale"),
			MaxHygiene:           v.GetFloat64("game.max_hygiene"),
			HygieneDecayRate:     v.GetFloat64("game.hygiene_decay_rate"),
			PatienceDecayRate:    v.GetFloat64("game.patience_decay_rate"),
			OrderSpawnRate:       v.GetFloat64("game.order_spawn_rate"),
			MaxActiveOrders:      v.GetInt("game.max_active_orders"),
			StationCount:         v.GetInt("game.station_count"),
			BurnAfter:            time.Duration(v.GetInt64("game.burn_after_ms")) * time.Millisecond,
		},
		Peer: PeerConfig{
			HostURL:     v.GetString("peer.host_url"),
			ActionRate:  v.GetFloat64("peer.action_rate"),
			ActionBurst: v.GetInt("peer.action_burst"),
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
	}
}
