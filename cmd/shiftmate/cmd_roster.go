package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

var (
	showOffset int
	showDate   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the roster for a week",
	Example: `  shiftmate show
  shiftmate show --offset 1
  shiftmate show --date 2026-01-10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()

			var assignment entity.Assignment
			if showDate != "" {
				date, err := time.ParseInLocation(domain.WeekKeyLayout, showDate, a.loc)
				if err != nil {
					return fmt.Errorf("invalid date %q. Use YYYY-MM-DD", showDate)
				}
				assignment = svc.Resolve(cmd.Context(), date)
			} else {
				assignment = svc.Week(cmd.Context(), showOffset)
			}

			printAssignment(cmd.OutOrStdout(), svc, assignment)
			return nil
		})
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming [weeks]",
	Short: "List the roster for the coming weeks, starting with the current one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks := 4
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("weeks must be a positive number, got %q", args[0])
			}
			weeks = n
		}

		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()
			assignments, err := svc.Upcoming(cmd.Context(), weeks)
			if err != nil {
				return err
			}
			for i, assignment := range assignments {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printAssignment(cmd.OutOrStdout(), svc, assignment)
			}
			return nil
		})
	},
}

func init() {
	showCmd.Flags().IntVarP(&showOffset, "offset", "o", 0, "Weeks relative to the current week")
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "Any date inside the week (YYYY-MM-DD)")
	showCmd.MarkFlagsMutuallyExclusive("offset", "date")
}

func printAssignment(w io.Writer, svc contract.RosterService, a entity.Assignment) {
	title := fmt.Sprintf("%s (%s)", svc.Label(a.WeekMonday), a.WeekRange())
	if a.Overridden {
		title += " [override]"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  Morning: %s\n", personText(a.Morning))

	evening := make([]string, 0, len(a.Evening))
	for _, p := range a.Evening {
		evening = append(evening, personText(p))
	}
	fmt.Fprintf(w, "  Evening: %s\n", strings.Join(evening, ", "))
}

func personText(p entity.Person) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ShortCode)
}
