package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// printLanding is the non-interactive rendition of the dashboard.
func printLanding(ctx context.Context, out io.Writer, app *App) error {
	page, err := app.Catalog.Landing(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatter.FormatNav("Dashboard"))
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatHero())
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatStats(page.Stats))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d %s · %d %s",
		len(page.Assessments), formatter.Pluralize(len(page.Assessments), "assessment", "assessments"),
		len(page.Recommendations), formatter.Pluralize(len(page.Recommendations), "recommendation", "recommendations"),
	)))
	fmt.Fprintln(out, formatter.Dim("Run 'studyai upload <files>' to add study materials."))
	return nil
}

func newAssessmentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "assessments",
		Aliases: []string{"a"},
		Short:   "List assessments, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Catalog.Assessments(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatIntro(formatter.AssessmentsIntro))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatAssessments(tasks))
			return nil
		},
	}
}

func newAnalyticsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show study statistics, subject progress and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Catalog.Landing(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderAnalytics(page, app.now()))
			return nil
		},
	}
}

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Show study recommendations and the next planned session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Catalog.Landing(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRecommendations(page))
			return nil
		},
	}
}
