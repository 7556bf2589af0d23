package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/username/friday-calendar/internal/config"
	"github.com/username/friday-calendar/internal/export"
	"github.com/username/friday-calendar/internal/timesheet"
	"github.com/username/friday-calendar/internal/tui"
	"github.com/username/friday-calendar/pkg/dateutil"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the month grid and monthly summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, state, err := loadState(logger)
			if err != nil {
				return err
			}
			plain := !term.IsTerminal(int(os.Stdout.Fd()))
			today := timesheet.DateFromTime(dateutil.Today())
			fmt.Println(tui.RenderMonth(state, today, 0, tui.NewStyles(plain)))
			return nil
		},
	}
}

func targetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target",
		Short: "Print the target hours of the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, state, err := loadState(logger)
			if err != nil {
				return err
			}
			printTarget(os.Stdout, state)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	var hours []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logged hours and working Fridays as an iCalendar file",
		Example: "  friday-calendar export --month 2023-05 --hours 2023-05-02=7:00 --hours 2023-05-10=8.5\n" +
			"  friday-calendar export --out - > may.ics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, state, err := loadState(logger)
			if err != nil {
				return err
			}
			if err := applyHours(state, hours); err != nil {
				return err
			}

			exporter := export.NewExporter(cfg.Export.ProductID, logger)
			if out == "-" {
				return exporter.Write(os.Stdout, state)
			}

			dir := cfg.Export.GetDir()
			if out != "" {
				dir = out
			}
			path, err := exporter.WriteFile(dir, state)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Printf("✅ Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory, '-' for stdout (default: export.dir)")
	cmd.Flags().StringArrayVar(&hours, "hours", nil, "Hours for a day as DATE=H:MM or DATE=7.5 (repeatable)")

	return cmd
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui needs an interactive terminal; use 'show' or 'target' instead")
	}

	// stderr output would corrupt the screen
	uiLogger := logger
	if !logToFile {
		uiLogger = zap.NewNop()
	}

	cfg, state, err := loadState(uiLogger)
	if err != nil {
		return err
	}

	model := tui.NewModel(state, timesheet.DateFromTime(dateutil.Today()), tui.NewStyles(false), uiLogger)
	defer model.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	year, month := state.ViewedMonth()
	uiLogger.Info("Starting calendar UI", zap.Int("year", year), zap.Int("month", month))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("calendar UI failed: %w", err)
	}
	return nil
}

// loadState loads the config and opens the month from --month, calendar.month or today
func loadState(log *zap.Logger) (*config.Config, *timesheet.State, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	year, month := cfg.Calendar.GetMonth(dateutil.Today())
	if monthFlag != "" {
		year, month, err = dateutil.ParseMonth(monthFlag)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --month: %w", err)
		}
	}

	return cfg, timesheet.NewState(year, month, log), nil
}

// applyHours stores DATE=DURATION pairs through the same select/save path the UI uses.
// Dates must lie in the viewed month, the only month an export contains.
func applyHours(state *timesheet.State, pairs []string) error {
	year, month := state.ViewedMonth()
	for _, pair := range pairs {
		rawDate, rawDuration, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid --hours %q: expected DATE=H:MM", pair)
		}
		date, err := timesheet.ParseCalendarDate(rawDate)
		if err != nil {
			return fmt.Errorf("invalid --hours %q: %w", pair, err)
		}
		if !date.InMonth(year, month) {
			return fmt.Errorf("invalid --hours %q: %s is outside %04d-%02d; pass --month to export another month",
				pair, date, year, month)
		}
		duration, err := timesheet.ParseDuration(rawDuration)
		if err != nil {
			return fmt.Errorf("invalid --hours %q: %w", pair, err)
		}

		state.SelectDate(date)
		state.SaveSelected(duration.Hours(), duration.Minutes())
	}
	return nil
}

func printTarget(w io.Writer, state *timesheet.State) {
	status := state.Status()
	info := state.MonthInfo()

	fridays := make([]string, 0, len(status.WorkingFridays))
	for _, day := range status.WorkingFridays {
		fridays = append(fridays, fmt.Sprint(day))
	}

	fmt.Fprintf(w, "📊 %s %d\n", dateutil.MonthName(status.Month), status.Year)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Target hours:     %.1fh\n", status.TargetHours)
	fmt.Fprintf(w, "  Working days:     %d\n", info.WorkDays)
	fmt.Fprintf(w, "  Working Fridays:  %s\n", strings.Join(fridays, ", "))
	fmt.Fprintf(w, "  Days off Fridays: %d\n", info.NonWorkingFridays)
}
