package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

func newWeeklyCommand(opts *rootOptions) *cobra.Command {
	var (
		userID string
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Summarize the seven days ending on --date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(a *app.App) error {
				var now time.Time
				if date != "" {
					day, err := time.ParseInLocation(domain.DayKeyLayout, date, a.Aggregator.Location())
					if err != nil {
						return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
					}
					now = day.Add(12 * time.Hour)
				}

				stats, err := a.Aggregator.ComputeWeeklyStats(cmd.Context(), userID, now)
				if err != nil {
					return err
				}

				if asJSON {
					b, err := json.MarshalIndent(stats, "", "  ")
					if err != nil {
						return fmt.Errorf("marshal weekly stats json: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(b))
					return nil
				}
				return printWeekly(cmd, stats)
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id to summarize")
	cmd.Flags().StringVar(&date, "date", "", "Last day of the window (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printWeekly(cmd *cobra.Command, s *domain.WeeklyStats) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Week %s .. %s\n", s.StartDate, s.EndDate)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tWORKOUTS\tBURNED\tCONSUMED")
	for i := range s.DayKeys {
		fmt.Fprintf(tw, "%s\t%d\t%.0f\t%.0f\n", s.Labels[i], s.WorkoutsByDay[i], s.CaloriesBurnedByDay[i], s.CaloriesConsumedByDay[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Workouts: %d\nBurned: %.0f kcal\nConsumed: %.0f kcal\n", s.TotalWorkouts, s.CaloriesBurned, s.CaloriesConsumed)
	fmt.Fprintf(out, "Active days: %d (avg %.0f kcal)\n", s.ActiveDays, s.AverageCaloriesConsumedPerActiveDay)
	return nil
}
