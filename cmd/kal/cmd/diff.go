// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     cmd
// Description: diff command - signed distance between two moments
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/kalender/foundation/core/log"
)

var diffCmd = &cobra.Command{
	Use:   "diff VON BIS",
	Short: "Berechnet die Zeitspanne zwischen zwei Zeitpunkten",
	Long: `Berechnet BIS - VON. Beide Argumente sind kanonische Zeitpunkte
("YYYY.MM.DD HH:MM:SS") oder Daten (YYYY.MM.DD, dann 00:00:00).

Liegt BIS vor VON, ist die Spanne negativ.

Beispiel:
  kal diff "2024.02.29 23:59:59" 2024.03.01`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	from, err := parseMoment("diff", args[0])
	if err != nil {
		return err
	}
	to, err := parseMoment("diff", args[1])
	if err != nil {
		return err
	}

	d := to.Sub(from)
	logger.Debug("difference computed", mdwlog.Fields{
		"from":   from.String(),
		"to":     to.String(),
		"result": d.String(),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Von:       %s\n", from)
	fmt.Fprintf(out, "Bis:       %s\n", to)
	fmt.Fprintf(out, "Spanne:    %s\n", d)
	fmt.Fprintf(out, "Tage:      %d\n", d.Days())
	fmt.Fprintf(out, "Stunden:   %d\n", d.TotalHours())
	fmt.Fprintf(out, "Minuten:   %d\n", d.TotalMinutes())
	fmt.Fprintf(out, "Sekunden:  %d\n", d.TotalSeconds())
	return nil
}
