package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the drivecopy application
var rootCmd = &cobra.Command{
	Use:   "drivecopy",
	Short: "Replicates Google Drive folder trees into a destination folder",
	Long: `drivecopy copies batches of Google Drive folders into a destination
folder, recreating the full folder structure.

Runs are idempotent: items that already exist in the destination are skipped,
and previously copied top-level folders are recognized even after they have
been renamed, so a run can be repeated or resumed without creating
duplicates.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "drivecopy version %s\n" .Version}}`)

	// If no subcommand is provided, run the copy command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "copy")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("drivecopy version %s\n", version)
		},
	}
}
