// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     cmd
// Description: shift command - move a timestamp by a duration
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/kalender/foundation/utils/datex"
)

var (
	shiftDays    int
	shiftHours   int
	shiftMinutes int
	shiftSeconds int
)

var shiftCmd = &cobra.Command{
	Use:   "shift ZEITPUNKT",
	Short: "Verschiebt einen Zeitpunkt um eine Zeitspanne",
	Long: `Verschiebt ZEITPUNKT um die angegebene Spanne. Alle Angaben muessen
dasselbe Vorzeichen haben; Stunden liegen in -23..23, Minuten und
Sekunden in -59..59. Ergebnisse vor dem 0000.01.01 sind ein Fehler.

Beispiele:
  kal shift "2024.02.28 23:00:00" --hours 2
  kal shift 2024.03.01 --days -1 --seconds -1`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	shiftCmd.Flags().IntVarP(&shiftDays, "days", "d", 0, "Tage")
	shiftCmd.Flags().IntVarP(&shiftHours, "hours", "H", 0, "Stunden (-23..23)")
	shiftCmd.Flags().IntVarP(&shiftMinutes, "minutes", "m", 0, "Minuten (-59..59)")
	shiftCmd.Flags().IntVarP(&shiftSeconds, "seconds", "s", 0, "Sekunden (-59..59)")
	rootCmd.AddCommand(shiftCmd)
}

func runShift(cmd *cobra.Command, args []string) error {
	ts, err := parseMoment("shift", args[0])
	if err != nil {
		return err
	}
	d, err := datex.NewDuration(shiftDays, shiftHours, shiftMinutes, shiftSeconds)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("shift").
		WithField("input", ts.String()).
		WithField("duration", d.String())
	result, err := ts.Add(d)
	if err != nil {
		return err
	}
	timer.WithField("result", result.String()).Stop()

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
