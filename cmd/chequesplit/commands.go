package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"cheque-splitter/internal/config"
	"cheque-splitter/internal/domain"
	"cheque-splitter/internal/gateway"
	"cheque-splitter/internal/logger"
	"cheque-splitter/internal/usecase"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	logLevel   string
	collision  string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "chequesplit",
		Short:         "Split a cheque register workbook into monthly sheets with totals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.collision, "collision", "", "Same month in different years: overwrite or split")

	cmd.AddCommand(newProcessCommand(flags))
	cmd.AddCommand(newSummaryCommand(flags))
	return cmd
}

func newProcessCommand(flags *globalFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "process <input>",
		Short: "Write the monthly workbook for an input register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			input := args[0]
			if output == "" {
				output = defaultOutputPath(input, app.cfg.OutputSuffix)
			}

			processed, err := app.processor.Load(app.ctx, input)
			if err != nil {
				return fmt.Errorf("failed to load file: %w", err)
			}
			if err := app.processor.Save(app.ctx, processed, output); err != nil {
				return fmt.Errorf("failed to save Excel file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d month sheet(s) and %s to %s\n", len(processed.Months), domain.SummarySheetName, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook path (default <input>_processed.xlsx)")
	return cmd
}

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <input>",
		Short: "Print the month-by-month totals of an input register as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			processed, err := app.processor.Load(app.ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load file: %w", err)
			}

			output, err := json.MarshalIndent(newSummaryReport(processed), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to generate JSON report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}
}

type application struct {
	ctx       context.Context
	cfg       *config.Config
	processor *usecase.ChequeProcessor
}

// setup loads configuration and wires the repository into the usecase.
func setup(ctx context.Context, flags *globalFlags) (*application, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.collision != "" {
		cfg.Collision = flags.collision
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, err := usecase.ParseCollisionPolicy(cfg.Collision)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel)
	repo := gateway.NewSpreadsheetRepository(gateway.WithXLSCharset(cfg.XLSCharset))
	return &application{
		ctx:       logger.WithContext(ctx, log),
		cfg:       cfg,
		processor: usecase.NewChequeProcessor(repo, usecase.WithCollisionPolicy(policy)),
	}, nil
}

func defaultOutputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix + ".xlsx"
}
