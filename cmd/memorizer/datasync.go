package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/memorizer/internal/datasync"
)

func newExportCommand() *cobra.Command {
	var (
		user   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export review events and label assignments to YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(user)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, services, err := openServices(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			exporter := datasync.NewExporter(services.Events, services.Assignments)
			data, err := exporter.Export(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := datasync.WriteYAML(output, data); err != nil {
				return fmt.Errorf("write yaml: %w", err)
			}

			fmt.Printf("Exported %d review events and %d label assignments to %s\n",
				len(data.ReviewEvents), len(data.LabelAssignments), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id")
	cmd.Flags().StringVar(&output, "output", "./export", "Output directory for YAML files")
	return cmd
}

func newImportCommand() *cobra.Command {
	var (
		user   string
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import review events from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(user)
			if err != nil {
				return err
			}
			events, err := datasync.ReadEvents(file)
			if err != nil {
				return fmt.Errorf("read events: %w", err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, services, err := openServices(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			importer := datasync.NewImporter(services.Memorizer, services.Events, os.Stdout)
			result, err := importer.ImportEvents(cmd.Context(), userID, events, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("import events: %w", err)
			}

			fmt.Println("\nImport Summary:")
			if dryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Review events:  %d new, %d skipped, %d warnings\n", result.EventsNew, result.EventsSkipped, result.EventsWarnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id")
	cmd.Flags().StringVar(&file, "file", filepath.Join("export", datasync.ReviewEventsFile), "YAML file of review events")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
