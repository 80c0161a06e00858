package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/memorizer/internal/scheduler"
	"github.com/at-ishikawa/memorizer/internal/server"
)

// dueRow is one line of the due listing, from either the database or a remote server.
type dueRow struct {
	QuestionID string
	Phase      string
	Interval   time.Duration
	DueAt      time.Time
}

func newDueCommand() *cobra.Command {
	var (
		user   string
		asOf   time.Time
		labelF string
		remote string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the questions due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(user)
			if err != nil {
				return err
			}
			root, err := parseOptionalLabel(labelF)
			if err != nil {
				return err
			}
			at := asOf
			if at.IsZero() {
				at = time.Now().UTC()
			}

			var rows []dueRow
			if remote != "" {
				if token == "" {
					return fmt.Errorf("--token is required with --remote")
				}
				rows, err = remoteDue(cmd.Context(), remote, token, at, root)
			} else {
				rows, err = localDue(cmd.Context(), userID, at, root)
			}
			if err != nil {
				return err
			}
			return printDue(os.Stdout, rows)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id")
	cmd.Flags().Var(newTimeValue(&asOf), "as-of", "Reference time in RFC3339, defaults to now")
	cmd.Flags().StringVar(&labelF, "label", "", "Restrict to the subtree of this label id")
	cmd.Flags().StringVar(&remote, "remote", "", "Base URL of a memorizer server to query instead of the database")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token for --remote")
	return cmd
}

func localDue(ctx context.Context, userID uuid.UUID, asOf time.Time, root *uuid.UUID) ([]dueRow, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, services, err := openServices(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	states, err := services.Scheduler.DueStates(ctx, userID, asOf, root)
	if err != nil {
		return nil, fmt.Errorf("DueStates() > %w", err)
	}
	rows := make([]dueRow, 0, len(states))
	for _, state := range states {
		rows = append(rows, dueRow{
			QuestionID: state.QuestionID.String(),
			Phase:      string(state.Phase),
			Interval:   state.Interval,
			DueAt:      state.DueAt,
		})
	}
	return rows, nil
}

// remoteDue asks the server for the due ids and then for the state of each one.
// The user is the subject of the token.
func remoteDue(ctx context.Context, baseURL, token string, asOf time.Time, root *uuid.UUID) ([]dueRow, error) {
	client := server.NewRepositoryClient(http.DefaultClient, baseURL, token)
	req := &server.QuestionsDueRequest{AsOf: asOf}
	if root != nil {
		req.LabelSubtreeRoot = root.String()
	}
	due, err := client.QuestionsDue(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("QuestionsDue() > %w", err)
	}

	rows := make([]dueRow, 0, len(due.QuestionIDs))
	for _, id := range due.QuestionIDs {
		res, err := client.GetLearningState(ctx, &server.GetLearningStateRequest{QuestionID: id})
		if err != nil {
			return nil, fmt.Errorf("GetLearningState(%s) > %w", id, err)
		}
		rows = append(rows, dueRow{
			QuestionID: id,
			Phase:      res.State.Phase,
			Interval:   time.Duration(res.State.IntervalSeconds) * time.Second,
			DueAt:      res.State.DueAt,
		})
	}
	return rows, nil
}

func printDue(w io.Writer, rows []dueRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No questions are due.")
		return err
	}
	for _, row := range rows {
		phase := row.Phase
		switch scheduler.Phase(row.Phase) {
		case scheduler.PhaseLapsed:
			phase = color.RedString(phase)
		case scheduler.PhaseNew:
			phase = color.CyanString(phase)
		case scheduler.PhaseReview:
			phase = color.GreenString(phase)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\tinterval=%s\tdue=%s\n",
			row.QuestionID, phase, row.Interval, row.DueAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}
