package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/config"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
)

type ResetDataCommand struct {
	DatabasePath string
	Yes          bool
}

func NewResetDataCommand() *ResetDataCommand {
	return &ResetDataCommand{}
}

func (cmd *ResetDataCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset-data", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Yes, "yes", false, "Confirm deletion without prompting")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset-data [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete every profile, record, session and preference from the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s reset-data -yes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s reset-data -db ./dostanne.db -yes\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.Yes {
		fs.Usage()
		return fmt.Errorf("refusing to delete data without -yes")
	}

	return nil
}

func (cmd *ResetDataCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database does not exist: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ClearAllData(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Printf("All data cleared from %s\n", cmd.DatabasePath)
	return nil
}
