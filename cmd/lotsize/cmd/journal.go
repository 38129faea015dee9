package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/pkg/id"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query saved scenarios",
	Long: `Query and display scenarios recorded in the SQLite journal.

Subcommands:
  show   - Show a scenario by ID
  list   - List recent scenarios
  today  - List scenarios saved today
  day    - List scenarios saved on a specific day

Examples:
  lotsize journal show 01J1Z9X4K7QW8M3N5P6R2S4T0V
  lotsize journal list -n 5
  lotsize journal day 2024-07-01`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <scenario-id>",
	Short: "Show a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent scenarios",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List scenarios saved today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List scenarios saved on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default journal.db_path)")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "number of scenarios to list (0 for all)")
}

func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		return nil, fmt.Errorf("no journal database: set --db or journal.db_path")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	taken, err := id.Time(args[0])
	if err != nil {
		return fmt.Errorf("invalid scenario id %q: %w", args[0], err)
	}

	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	sc, err := j.GetScenario(args[0])
	if err != nil {
		return fmt.Errorf("get scenario: %w", err)
	}

	lg.Debug("scenario loaded", "id", sc.ID, "taken", taken.Local())
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenarioOrg(sc))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	list, err := j.ListScenarios(journalLimit)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenariosOrg(list))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return listDay(cmd, time.Now().In(time.Local).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(cmd, args[0])
}

func listDay(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	list, err := j.ListScenariosBetween(start, end)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenariosOrg(list))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
