package cli

import (
	"time"

	"github.com/alexanderramin/studyai/internal/config"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the configuration and services used by CLI commands and the TUI.
type App struct {
	Config  config.Config
	Catalog service.CatalogService

	// Observer receives flow events from the headless commands.
	Observer observe.Observer
	// TUIObserver receives flow events while the TUI owns the terminal. It
	// must not write to stdout or stderr.
	TUIObserver observe.Observer

	Now           func() time.Time
	IsInteractive func() bool

	// RunTUI starts the interactive program. Nil uses runTUI.
	RunTUI func(app *App) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyai",
		Short: "AI study platform: upload documents, generate assessments, track progress",
		Long: `StudyAI turns study documents into assessments and tracks your progress.

Run without arguments in a terminal to open the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return app.Config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				run := app.RunTUI
				if run == nil {
					run = runTUI
				}
				return run(app)
			}
			return printLanding(cmd.Context(), cmd.OutOrStdout(), app)
		},
	}

	bindGlobalFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newUploadCmd(app),
		newGenerateCmd(app),
		newAssessmentsCmd(app),
		newAnalyticsCmd(app),
		newRecommendCmd(app),
	)

	return root
}

// bindGlobalFlags lets flags override the environment-derived config.
func bindGlobalFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.DurationVar(&cfg.ProcessingDelay, "processing-delay", cfg.ProcessingDelay, "simulated document processing time")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "interval between generation progress ticks")
	fs.IntVar(&cfg.Step, "step", cfg.Step, "generation progress added per tick (1-100)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
}
