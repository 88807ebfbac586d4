package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	slackcmd "github.com/jhrahman/shiftmate/internal/domain/slack"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Edit manual overrides of the rotation",
	Long: `Edit manual overrides. <who> is a person id, short code or name prefix.
[week] is a Monday as YYYY-MM-DD or a signed offset like +1 or -2 (default: current week).`,
}

var overrideMorningCmd = &cobra.Command{
	Use:   "morning <who> [week]",
	Short: "Put someone on the morning shift",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := slackcmd.CheckSelection(slackcmd.CmdMorning, args); err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()
			person, err := lookupPerson(svc.Team(), args[0])
			if err != nil {
				return err
			}
			week, err := resolveWeek(svc, argAt(args, 1))
			if err != nil {
				return err
			}
			if err := svc.SetMorning(cmd.Context(), week, person.ID); err != nil {
				return err
			}
			return printWeek(cmd, svc, week)
		})
	},
}

var overrideEveningCmd = &cobra.Command{
	Use:   "evening <who> <who> [week]",
	Short: "Put two people on the evening shift, the third takes the morning",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := slackcmd.CheckSelection(slackcmd.CmdEvening, args); err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()
			ids := make([]int, 0, 2)
			for _, ref := range args[:2] {
				person, err := lookupPerson(svc.Team(), ref)
				if err != nil {
					return err
				}
				ids = append(ids, person.ID)
			}
			week, err := resolveWeek(svc, argAt(args, 2))
			if err != nil {
				return err
			}
			if err := svc.SetEvening(cmd.Context(), week, ids); err != nil {
				return err
			}
			return printWeek(cmd, svc, week)
		})
	},
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear [week]",
	Short: "Remove the override of a week and go back to the rotation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			svc := a.roster()
			week, err := resolveWeek(svc, argAt(args, 0))
			if err != nil {
				return err
			}
			if err := svc.ClearOverride(cmd.Context(), week); err != nil {
				return err
			}
			return printWeek(cmd, svc, week)
		})
	},
}

var overrideImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: `Import overrides from a {"YYYY-MM-DD": person_id} JSON file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		return withApp(cmd.Context(), func(a *app) error {
			batch, err := parseImport(data, a.cfg.Team)
			if err != nil {
				return err
			}
			if err := importOverrides(cmd, a.store, batch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d overrides\n", len(batch))
			return nil
		})
	},
}

func init() {
	overrideCmd.AddCommand(overrideMorningCmd)
	overrideCmd.AddCommand(overrideEveningCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	overrideCmd.AddCommand(overrideImportCmd)
}

func lookupPerson(team entity.Team, ref string) (entity.Person, error) {
	person, ok := team.Lookup(ref)
	if !ok {
		return entity.Person{}, fmt.Errorf("unknown team member %q", ref)
	}
	return person, nil
}

// resolveWeek turns a CLI week argument into a week key.
func resolveWeek(svc contract.RosterService, arg string) (entity.WeekKey, error) {
	ref, err := slackcmd.ParseWeekRef(arg)
	if err != nil {
		return "", err
	}
	if ref.Key != "" {
		return ref.Key, nil
	}
	return svc.CurrentWeekKey(ref.Offset), nil
}

func printWeek(cmd *cobra.Command, svc contract.RosterService, week entity.WeekKey) error {
	a, err := svc.WeekOf(cmd.Context(), week)
	if err != nil {
		return err
	}
	printAssignment(cmd.OutOrStdout(), svc, a)
	return nil
}

// parseImport validates an exported override map. Values may be numbers or
// numeric strings.
func parseImport(data []byte, team entity.Team) (map[entity.WeekKey]int, error) {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}

	batch := make(map[entity.WeekKey]int, len(raw))
	for key, value := range raw {
		week := entity.WeekKey(key)
		if err := roster.ValidateWeekKey(week); err != nil {
			return nil, err
		}
		id, err := value.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: week %s has person %q", roster.ErrInvalidOverrideSelection, key, value)
		}
		if _, ok := team.ByID(int(id)); !ok {
			return nil, fmt.Errorf("%w: week %s has person %d", roster.ErrUnknownPerson, key, id)
		}
		batch[week] = int(id)
	}
	return batch, nil
}

func importOverrides(cmd *cobra.Command, store contract.OverrideStore, batch map[entity.WeekKey]int) error {
	if bulk, ok := store.(contract.BulkOverrideStore); ok {
		return bulk.SetMany(cmd.Context(), batch)
	}

	for week, id := range batch {
		if err := store.Set(cmd.Context(), week, id); err != nil {
			return fmt.Errorf("failed to import week %s: %w", week, err)
		}
		logger.Debug("Imported override", zap.String("week", week.String()), zap.Int("person_id", id))
	}
	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
