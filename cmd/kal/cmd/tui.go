package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/kalender/foundation/core/log"
	"github.com/msto63/kalender/foundation/utils/datex"
	"github.com/msto63/kalender/internal/tui/calendarview"
)

var tuiDate string

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"cal"},
	Short:   "Startet den interaktiven Kalender",
	Long: `Startet den interaktiven Kalender im Terminal.

Tasten:
  ←/h →/l      Tag zurueck/vor
  ↑/k ↓/j      Woche zurueck/vor
  PgUp/p PgDn/n  Monat zurueck/vor
  t            Zum Referenzdatum
  ?            Hilfe
  q            Beenden`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiDate, "date", "", "Startdatum (YYYY.MM.DD), default: Referenzdatum")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ref, err := cfg.Reference(now())
	if err != nil {
		return err
	}
	if tuiDate != "" {
		if ref, err = datex.ParseDate(tuiDate); err != nil {
			return err
		}
	}

	logger.Info("starting calendar view", mdwlog.Fields{"reference": ref.String()})
	return calendarview.Run(calendarview.Config{
		Reference:    ref,
		WeekStart:    cfg.WeekStart(),
		ShowDayCount: cfg.TUI.ShowDayCount,
		ShowWeekday:  cfg.TUI.ShowWeekday,
		Now:          now,
	})
}
