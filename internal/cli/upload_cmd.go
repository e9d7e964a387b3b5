package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/intake"
	"github.com/alexanderramin/studyai/internal/notice"
	"github.com/alexanderramin/studyai/internal/schedule"
	"github.com/spf13/cobra"
)

func newUploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "upload <path>...",
		Aliases: []string{"up"},
		Short:   "Upload study documents and wait for processing",
		Long: `Upload study documents. Directories expand to the files directly inside them.

Accepted types are PDF, Word documents and plain text. File types are detected
from content, not from the extension.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), cmd.OutOrStdout(), app, args)
		},
	}
}

// runUpload submits one batch and blocks until its completion notice.
func runUpload(ctx context.Context, out io.Writer, app *App, paths []string) error {
	candidates, err := intake.FromPaths(paths)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop := schedule.NewLoop()
	defer loop.Close()

	var spin *formatter.Spinner
	stopSpinner := func() {
		if spin != nil {
			spin.Stop()
			spin = nil
		}
	}
	defer stopSpinner()

	printer := notice.Func(func(n notice.Notice) {
		stopSpinner()
		fmt.Fprintln(out, formatter.FormatNotice(n))
	})
	done := false
	onProcessed := notice.Func(func(n notice.Notice) {
		if !n.IsDestructive() {
			done = true
			cancel()
		}
	})
	notifier := notice.Multi(printer, onProcessed)

	collector := intake.NewCollector(loop, notifier,
		intake.WithProcessingDelay(app.Config.ProcessingDelay),
		intake.WithObserver(app.Observer),
	)
	defer collector.Close()

	if _, err := collector.Submit(candidates); err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatIntakeItems(collector.Items(), collector.State()))

	if app.interactive() {
		spin = formatter.NewSpinner(out, "Processing documents...")
		spin.Start()
	}

	if err := loop.Run(ctx); err != nil && !(done && errors.Is(err, context.Canceled)) {
		return fmt.Errorf("upload interrupted: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatIntakeItems(collector.Items(), collector.State()))
	return nil
}
