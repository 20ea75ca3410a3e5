package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/config"
	"repse-simulator/internal/diagnostic"
	"repse-simulator/internal/history"
	"repse-simulator/internal/jsonpatch"
	"repse-simulator/internal/kvstore"
	"repse-simulator/internal/model"
	"repse-simulator/internal/scenario"
	"repse-simulator/internal/simulator"
	"repse-simulator/internal/tui"
)

const (
	Version = "0.3.0"
	appName = "repse-sim"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is everything a command needs, built from configuration.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	cat    *catalog.Catalog
	store  kvstore.Store
}

// setup loads configuration and opens the store. quiet drops logs unless
// log.file is set, for commands that own the terminal or stdout.
func setup(ctx context.Context, configPath string, quiet bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := zap.NewNop()
	if !quiet || cfg.Log.File != "" {
		if logger, err = cfg.NewLogger(); err != nil {
			return nil, err
		}
	}
	cat, err := catalog.Load(cfg.CatalogSource(), logger)
	if err != nil {
		logger.Sync() //nolint:errcheck
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := cfg.OpenStore(ctx)
	if err != nil {
		logger.Sync() //nolint:errcheck
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("Application ready",
		zap.String("storage", cfg.Storage.Backend),
		zap.Int("inspection_types", len(cat.InspectionTypes)))
	return &app{cfg: cfg, logger: logger, cat: cat, store: store}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close store", zap.Error(err))
	}
	a.logger.Sync() //nolint:errcheck
}

func (a *app) simulator() *simulator.Simulator {
	return simulator.New(a.cat, history.New(a.store, a.logger), a.logger)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "REPSE labor inspection simulator",
		Long:         "Practice a Mexican labor inspection on specialized-services subcontracting (REPSE) and get a scored report with an action plan.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(
		playCmd(&configPath),
		runCmd(&configPath),
		historyCmd(&configPath),
		catalogCmd(&configPath),
		diagnosticCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func playCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run an interactive inspection in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(*configPath)
		},
	}
}

func runPlay(configPath string) error {
	ctx, cancel := signalContext()
	defer cancel()
	a, err := setup(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.close()
	return tui.Run(a.cat, a.simulator())
}

func runCmd(configPath *string) *cobra.Command {
	var (
		scriptPath string
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a scripted inspection and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := scenario.Load(scriptPath)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			a, err := setup(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			sim := simulator.New(a.cat, nil, a.logger)
			if save {
				sim = a.simulator()
			}
			out, err := scenario.Run(sim, script)
			sim.Flush()
			if err != nil {
				return err
			}
			return writeJSON(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Scenario script (YAML)")
	cmd.Flags().BoolVar(&save, "save", false, "Append the result to the stored history")
	cmd.MarkFlagRequired("script") //nolint:errcheck
	return cmd
}

func historyCmd(configPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored inspection results, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			a, err := setup(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			list := history.New(a.store, a.logger).Load(ctx)
			if asJSON {
				return writeJSON(cmd, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored results.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTYPE\tPROFILE\tSCORE\tLEVEL\tINFRACTIONS\tFINE MAX (MXN)")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%d\n",
					r.Date.Local().Format(time.DateTime), r.InspectionType, r.Profile,
					r.Score, r.Level, len(r.Infractions), r.TotalFineMax)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	cmd.AddCommand(compareCmd(configPath))
	return cmd
}

func compareCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [older] [newer]",
		Short: "Print the JSON Patch between two stored results (0 is the latest, default 1 0)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := []int{1, 0}
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 0 {
					return fmt.Errorf("invalid history index %q", arg)
				}
				idx[i] = n
			}

			ctx, cancel := signalContext()
			defer cancel()
			a, err := setup(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			list := history.New(a.store, a.logger).Load(ctx)
			for _, n := range idx {
				if n >= len(list) {
					return fmt.Errorf("history has %d results, index %d out of range", len(list), n)
				}
			}
			ops, err := jsonpatch.Compare(list[idx[0]], list[idx[1]], "/id", "/date")
			if err != nil {
				return err
			}
			return writeJSON(cmd, ops)
		},
	}
}

func catalogCmd(configPath *string) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show inspection types and relevant rule counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			a, err := setup(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			if exportPath != "" {
				if err := catalog.WriteFile(exportPath, a.cat); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog written to %s\n", exportPath)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tPHASES\tPROFILE\tDOCUMENTS\tQUESTIONS\tVERIFICATION")
			for _, it := range a.cat.InspectionTypes {
				for _, p := range []model.ProfileType{model.ProfileContractor, model.ProfileBeneficiary} {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\t%d\n",
						it.ID, it.Name, len(it.Phases), p,
						len(a.cat.RelevantDocuments(p, it.ID)),
						len(a.cat.RelevantQuestions(p, it.ID)),
						len(a.cat.RelevantVerificationPoints(p, it.ID)))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the active catalog to a .yaml or .json file")
	return cmd
}

func diagnosticCmd(configPath *string) *cobra.Command {
	var (
		userType string
		answers  map[string]string
		show     bool
	)
	cmd := &cobra.Command{
		Use:   "diagnostic",
		Short: "Score a quick compliance self-assessment",
		Example: "  repse-sim diagnostic --type beneficiario \\\n" +
			"    --answer proveedor_repse=si --answer actividad_principal=si",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			a, err := setup(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.close()
			store := diagnostic.NewStore(a.store, a.logger)

			if show {
				d := store.Load(ctx)
				if d.DiagnosticResult == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No stored diagnostic.")
					return nil
				}
				return writeJSON(cmd, d)
			}

			pt := model.ProfileType(userType)
			if len(answers) == 0 {
				listDiagnosticQuestions(cmd, pt)
				return nil
			}
			r, err := diagnostic.Evaluate(pt, answers, time.Now())
			if err != nil {
				return err
			}
			if err := store.Save(ctx, r); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score: %d/%d (%d%%, %s)\n", r.Score, r.MaxScore, r.Percentage(), r.Level())
			printIssues(cmd, "Critical", r.CriticalIssues)
			printIssues(cmd, "Warnings", r.Warnings)
			printIssues(cmd, "Compliant", r.Compliant)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userType, "type", "t", string(model.ProfileContractor), "User type (contratista, beneficiario)")
	cmd.Flags().StringToStringVarP(&answers, "answer", "a", nil, "Answer as question=option; repeatable. Without answers the questions are listed")
	cmd.Flags().BoolVar(&show, "show", false, "Print the stored diagnostic")
	return cmd
}

func listDiagnosticQuestions(cmd *cobra.Command, pt model.ProfileType) {
	out := cmd.OutOrStdout()
	for _, q := range diagnostic.Questions(pt) {
		fmt.Fprintf(out, "%s: %s\n", q.ID, q.Text)
		values := make([]string, len(q.Options))
		for i, o := range q.Options {
			values[i] = fmt.Sprintf("%s (%s)", o.Value, o.Label)
		}
		fmt.Fprintf(out, "    %s\n", strings.Join(values, ", "))
	}
}

func printIssues(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", title)
	for _, it := range sorted {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", it)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
