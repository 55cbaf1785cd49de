package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/kalender/foundation/core/errors"
	mdwlog "github.com/msto63/kalender/foundation/core/log"
	"github.com/msto63/kalender/foundation/utils/datex"
	"github.com/msto63/kalender/pkg/core/config"
	"github.com/msto63/kalender/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	// Set by the root PersistentPreRunE before any command runs
	cfg    *config.Config
	logger *mdwlog.Logger

	// now is replaced in tests
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "kal",
	Short: "kal - Kalender- und Uhrzeitrechnung",
	Long: `kal rechnet mit Kalenderdaten, Uhrzeiten und Zeitspannen im
proleptischen gregorianischen Kalender ab dem Jahr 0.

Datumsangaben werden kanonisch geschrieben:
  Datum       YYYY.MM.DD           (z.B. 2024.02.29)
  Zeitpunkt   YYYY.MM.DD HH:MM:SS  (z.B. "2024.02.29 23:59:59")`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.LogError(err)
		}
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $KAL_CONFIG oder ./configs/kal.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Logging aktivieren")
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger = logging.NewLogger(logging.LoggerConfig{
		Name:    cfg.General.Name,
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	}).WithField("command", cmd.Name())

	logger.Debug("configuration loaded", mdwlog.Fields{
		"config":     cfgFile,
		"week_start": cfg.Calendar.WeekStart,
	})
	return nil
}

func printError(err error) {
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Fehler: %v\n", err)
}

// parseInts converts positional arguments to integers
func parseInts(operation string, args []string, names ...string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.FormatError(errors.ModuleCLI, operation, arg, names[i]+" als Ganzzahl")
		}
		nums[i] = n
	}
	return nums, nil
}

// parseMoment accepts a canonical timestamp or a canonical date (midnight)
func parseMoment(operation, s string) (datex.Timestamp, error) {
	if ts, err := datex.ParseTimestamp(s); err == nil {
		return ts, nil
	}
	if d, err := datex.ParseDate(s); err == nil {
		return datex.Combine(d, datex.TimeOfDay{}), nil
	}
	return datex.Timestamp{}, errors.FormatError(errors.ModuleCLI, operation, s,
		datex.TimestampLayout+" oder "+datex.DateLayout)
}

// dateArgs returns the date named by YEAR MONTH DAY, or the reference date
func dateArgs(operation string, args []string) (datex.Date, error) {
	if len(args) == 0 {
		return cfg.Reference(now())
	}
	nums, err := parseInts(operation, args, "Jahr", "Monat", "Tag")
	if err != nil {
		return datex.Date{}, err
	}
	return datex.NewDate(nums[0], nums[1], nums[2])
}

func yesNo(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
