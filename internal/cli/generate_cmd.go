package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/generation"
	"github.com/alexanderramin/studyai/internal/schedule"
	"github.com/spf13/cobra"
)

const progressBarWidth = 30

func newGenerateCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate assessments from the uploaded documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), app, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of generation cycles to run")
	return cmd
}

// runGenerate runs count back-to-back cycles, recording each new assessment
// in the catalog as it completes.
func runGenerate(ctx context.Context, out io.Writer, app *App, count int) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	seed, err := app.Catalog.Assessments(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop := schedule.NewLoop()
	defer loop.Close()

	var (
		driver    *generation.Driver
		remaining = count
		recordErr error
	)
	driver = generation.NewDriver(loop, seed,
		generation.WithTick(app.Config.Tick),
		generation.WithStep(app.Config.Step),
		generation.WithClock(app.now),
		generation.WithObserver(app.Observer),
		generation.WithOnProgress(func(s domain.GenerationProgressState) {
			fmt.Fprintln(out, formatter.FormatGenerationProgress(s, progressBarWidth))
		}),
		generation.WithOnComplete(func(task domain.GenerationTask) {
			if err := app.Catalog.RecordGenerated(ctx, task); err != nil {
				recordErr = err
				cancel()
				return
			}
			fmt.Fprintln(out, formatter.FormatGenerationProgress(driver.State(), progressBarWidth))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatAssessmentCard(task))
			fmt.Fprintln(out)

			remaining--
			if remaining > 0 {
				driver.Start()
				return
			}
			cancel()
		}),
	)
	defer driver.Close()

	driver.Start()
	err = loop.Run(ctx)
	switch {
	case recordErr != nil:
		return recordErr
	case remaining > 0:
		return fmt.Errorf("generation interrupted with %d cycle(s) left: %w", remaining, err)
	case err != nil && !errors.Is(err, context.Canceled):
		return err
	}

	total := len(driver.Tasks())
	fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d %s generated · %d in catalog",
		count, formatter.Pluralize(count, "assessment", "assessments"), total)))
	return nil
}
