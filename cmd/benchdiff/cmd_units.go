package main

import (
	"encoding/json"
	"fmt"

	"github.com/spboyer/benchdiff/internal/units"
	"github.com/spf13/cobra"
)

var (
	unitsProfile string
	unitsJSON    bool
)

func newUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units the comparison understands",
		Long: `List every unit of measure the comparison understands and whether a
larger value counts as an improvement. Results in any other unit abort the
comparison.`,
		Args: cobra.NoArgs,
		RunE: unitsCommandE,
	}

	cmd.Flags().StringVar(&unitsProfile, "profile", string(units.ProfileCurrent), "Unit policy profile: current or legacy")
	cmd.Flags().BoolVar(&unitsJSON, "json", false, "Print the table as JSON")

	return cmd
}

func unitsCommandE(cmd *cobra.Command, _ []string) error {
	profile, err := units.ParseProfile(unitsProfile)
	if err != nil {
		return err
	}
	entries := units.NewPolicy(profile).Entries()
	out := cmd.OutOrStdout()

	if unitsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal unit table: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "%-26s %s\n", "UNIT", "BETTER") //nolint:errcheck
	for _, e := range entries {
		direction := "smaller"
		if e.BiggerIsBetter {
			direction = "bigger"
		}
		fmt.Fprintf(out, "%-26s %s\n", e.Unit, direction) //nolint:errcheck
	}
	return nil
}
