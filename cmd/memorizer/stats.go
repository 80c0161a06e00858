package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/pdf"
	"github.com/at-ishikawa/memorizer/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var (
		user    string
		year    int
		month   int
		withPDF bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Write a monthly/yearly report of review statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}
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

			events, err := services.Events.FindByUser(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("FindByUser() > %w", err)
			}
			result := statistics.Calculate(events, cfg.Scheduler.PassThreshold, year, month)

			outputDir := cfg.Statistics.OutputDirectory
			if outputDir == "" {
				outputDir = "."
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
			}
			mdPath := filepath.Join(outputDir, reportFileName(year, month))
			file, err := os.Create(mdPath)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", mdPath, err)
			}
			defer func() { _ = file.Close() }()
			if err := statistics.RenderMarkdown(file, reportTitle(year, month), result); err != nil {
				return fmt.Errorf("RenderMarkdown() > %w", err)
			}
			fmt.Printf("Report written to %s\n", mdPath)

			if !withPDF {
				return nil
			}
			pdfPath, err := pdf.ConvertMarkdownToPDF(mdPath)
			if err != nil {
				return fmt.Errorf("ConvertMarkdownToPDF() > %w", err)
			}
			zap.L().Debug("Rendered PDF report", zap.String("path", pdfPath))
			fmt.Printf("PDF written to %s\n", pdfPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "Also render the report as PDF")
	return cmd
}

func reportFileName(year, month int) string {
	switch {
	case month != 0:
		return fmt.Sprintf("review-report-%04d-%02d.md", year, month)
	case year != 0:
		return fmt.Sprintf("review-report-%04d.md", year)
	default:
		return "review-report.md"
	}
}

func reportTitle(year, month int) string {
	switch {
	case month != 0:
		return fmt.Sprintf("Review report %04d-%02d", year, month)
	case year != 0:
		return fmt.Sprintf("Review report %04d", year)
	default:
		return "Review report"
	}
}
