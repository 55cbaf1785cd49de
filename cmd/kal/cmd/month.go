// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     cmd
// Description: month command - print a month sheet
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/kalender/foundation/core/log"
	"github.com/msto63/kalender/foundation/utils/datex"
	"github.com/msto63/kalender/internal/calendar"
	"github.com/msto63/kalender/internal/tui/calendarview"
)

var (
	monthPlain     bool
	monthWeekStart string
)

var monthCmd = &cobra.Command{
	Use:   "month [JAHR MONAT]",
	Short: "Zeigt ein Monatsblatt",
	Long: `Zeigt das Monatsblatt fuer JAHR MONAT, ohne Argumente den Monat des
Referenzdatums. Der erste Wochentag kommt aus calendar.week_start oder
--week-start.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("erwartet keine oder zwei Argumente, erhalten %d", len(args))
		}
		return nil
	},
	RunE: runMonth,
}

func init() {
	monthCmd.Flags().BoolVar(&monthPlain, "plain", false, "Ohne Farben und Rahmen ausgeben")
	monthCmd.Flags().StringVar(&monthWeekStart, "week-start", "", "Erster Wochentag (z.B. monday, sun)")
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	ref, err := cfg.Reference(now())
	if err != nil {
		return err
	}

	year, month := ref.Year(), ref.Month()
	if len(args) == 2 {
		nums, err := parseInts("month", args, "Jahr", "Monat")
		if err != nil {
			return err
		}
		year, month = nums[0], nums[1]
	}

	weekStart := cfg.WeekStart()
	if monthWeekStart != "" {
		if weekStart, err = datex.ParseWeekday(monthWeekStart); err != nil {
			return err
		}
	}

	sheet, err := calendar.NewSheet(year, month, weekStart)
	if err != nil {
		return err
	}
	logger.Debug("sheet built", mdwlog.Fields{
		"title": sheet.Title(),
		"weeks": len(sheet.Weeks),
	})

	out := cmd.OutOrStdout()
	if monthPlain {
		fmt.Fprint(out, sheet.String())
		return nil
	}

	body := calendarview.TitleStyle.Render(sheet.Title()) + "\n" +
		calendarview.RenderSheet(sheet, ref, ref)
	fmt.Fprintln(out, calendarview.SheetPanelStyle.Render(body))
	return nil
}
