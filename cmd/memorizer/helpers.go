package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/bootstrap"
	"github.com/at-ishikawa/memorizer/internal/config"
	"github.com/at-ishikawa/memorizer/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openServices opens the database of cfg and wires the services over it.
// The caller closes the returned database.
func openServices(cfg *config.Config) (*sqlx.DB, *bootstrap.Services, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, bootstrap.NewServices(db, cfg, zap.L()), nil
}

func parseUserID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("--user is required")
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--user must be a user id: %w", err)
	}
	return userID, nil
}

func parseOptionalLabel(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	labelID, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("--label must be a label id: %w", err)
	}
	return &labelID, nil
}

// timeValue is a pflag.Value holding an RFC3339 time.
type timeValue struct {
	t *time.Time
}

var _ pflag.Value = timeValue{}

func newTimeValue(p *time.Time) timeValue {
	return timeValue{t: p}
}

func (v timeValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v timeValue) Set(s string) error {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("must be an RFC3339 time: %w", err)
	}
	*v.t = parsed
	return nil
}

func (v timeValue) Type() string {
	return "time"
}
