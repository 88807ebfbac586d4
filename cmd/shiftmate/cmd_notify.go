package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

var (
	notifyOffset   int
	notifyUpcoming bool
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Announce a week's roster to the configured webhooks",
	Long: `Sends one announcement per configured notifier. A single attempt is made;
any failure makes the command exit non-zero. With --upcoming it announces
the next week that has not started yet, as the weekly schedule does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()

			var (
				assignment entity.Assignment
				err        error
			)
			if notifyUpcoming {
				assignment, err = svc.NotifyUpcoming(cmd.Context())
			} else {
				assignment, err = svc.NotifyWeek(cmd.Context(), notifyOffset)
			}
			if err != nil {
				return fmt.Errorf("failed to notify week %s: %w", assignment.Week, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Announced %s: %s on mornings\n", assignment.WeekRange(), personText(assignment.Morning))
			return nil
		})
	},
}

func init() {
	notifyCmd.Flags().IntVarP(&notifyOffset, "offset", "o", 0, "Weeks relative to the current week")
	notifyCmd.Flags().BoolVar(&notifyUpcoming, "upcoming", false, "Announce the next week that has not started")
	notifyCmd.MarkFlagsMutuallyExclusive("offset", "upcoming")
}
