// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     cmd
// Description: date and weekday commands - describe a single calendar day
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/kalender/foundation/core/log"
	"github.com/msto63/kalender/foundation/utils/datex"
)

var dateJSON bool

// dateInfo is the machine readable form of the date command
type dateInfo struct {
	Date     datex.Date `json:"date"`
	Weekday  string     `json:"weekday"`
	LeapYear bool       `json:"leap_year"`
	DayCount int        `json:"day_count"`
}

var dateCmd = &cobra.Command{
	Use:   "date [JAHR MONAT TAG]",
	Short: "Beschreibt ein Kalenderdatum",
	Long: `Zeigt kanonische Form, Wochentag, Schaltjahr und Tageszahl eines Datums.
Ohne Argumente wird das Referenzdatum verwendet (calendar.reference_date
oder heute).

Die Tageszahl zaehlt die Tage seit dem 0000.01.01 (Tag 0).`,
	Args: dateArity,
	RunE: runDate,
}

var weekdayCmd = &cobra.Command{
	Use:   "weekday [JAHR MONAT TAG]",
	Short: "Zeigt den Wochentag eines Datums",
	Args:  dateArity,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dateArgs("weekday", args)
		if err != nil {
			return err
		}
		logger.Debug("weekday computed", mdwlog.Fields{"input": d.String(), "result": d.Weekday().String()})
		fmt.Fprintln(cmd.OutOrStdout(), d.Weekday())
		return nil
	},
}

func init() {
	dateCmd.Flags().BoolVar(&dateJSON, "json", false, "Ausgabe als JSON")
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(weekdayCmd)
}

// dateArity accepts either no arguments or YEAR MONTH DAY
func dateArity(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("erwartet keine oder drei Argumente, erhalten %d", len(args))
	}
	return nil
}

func runDate(cmd *cobra.Command, args []string) error {
	timer := logger.StartTimer("date")
	d, err := dateArgs("date", args)
	if err != nil {
		return err
	}

	info := dateInfo{
		Date:     d,
		Weekday:  d.Weekday().String(),
		LeapYear: d.IsLeapYear(),
		DayCount: d.DayCount(),
	}
	timer.WithField("result", d.String()).Stop()

	out := cmd.OutOrStdout()
	if dateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Datum:       %s\n", info.Date)
	fmt.Fprintf(out, "Wochentag:   %s\n", info.Weekday)
	fmt.Fprintf(out, "Schaltjahr:  %s\n", yesNo(info.LeapYear))
	fmt.Fprintf(out, "Tageszahl:   %d\n", info.DayCount)
	return nil
}
