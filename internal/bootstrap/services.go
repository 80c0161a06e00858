package bootstrap

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/access"
	"github.com/at-ishikawa/memorizer/internal/config"
	"github.com/at-ishikawa/memorizer/internal/eventlog"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/memorizer"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

// Services holds the repositories and services built over one database.
type Services struct {
	Questionnaires *questionnaire.DBRepository
	Events         *eventlog.DBRepository
	Assignments    *label.DBRepository
	Labels         *label.Service
	Scheduler      *scheduler.Service
	Memorizer      *memorizer.Service
}

// NewServices wires the services used by both binaries.
func NewServices(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Services {
	questionnaires := questionnaire.NewDBRepository(db)
	events := eventlog.NewDBRepository(db)
	assignments := label.NewDBRepository(db, cfg.Database.TxRetryAttempts)
	guard := access.NewGuard(questionnaires)

	labels := label.NewService(assignments, guard, logger.Named("label"))
	sched := scheduler.NewService(questionnaires, events, labels, scheduler.NewParams(cfg.Scheduler), logger.Named("scheduler"))
	core := memorizer.NewService(questionnaires, events, guard, sched, labels, logger.Named("memorizer"))

	return &Services{
		Questionnaires: questionnaires,
		Events:         events,
		Assignments:    assignments,
		Labels:         labels,
		Scheduler:      sched,
		Memorizer:      core,
	}
}
