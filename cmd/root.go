package cmd

import (
	"os"
	"strings"
	"time"

	"nathanbeddoewebdev/hexpair/cmd/commands/audit"
	"nathanbeddoewebdev/hexpair/cmd/commands/color"
	cfgcmd "nathanbeddoewebdev/hexpair/cmd/commands/config"
	"nathanbeddoewebdev/hexpair/cmd/commands/panel"
	"nathanbeddoewebdev/hexpair/internal/auditlog"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "hexpair",
		Short: "Random color pairs and their complements, from the terminal",
		Long: `hexpair keeps a small palette of background colors, each paired with its
RGB complement as a foreground. Pairs can be generated, listed, copied to the
clipboard and previewed on sample text, from commands or an interactive panel.

Quick start:
  hexpair color generate           # Add a random pair
  hexpair color list               # Show the palette
  hexpair color copy 1             # Copy the first background
  hexpair panel                    # Interactive panel`,
	}

	cmd.AddCommand(color.NewCommand())
	cmd.AddCommand(panel.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()

	start := time.Now()
	executed, err := root.ExecuteC()
	recordAudit(executed, os.Args[1:], err, start)

	if err != nil {
		os.Exit(1)
	}
}

// recordAudit writes one audit entry per command run. Help, completion and
// the audit commands themselves are not recorded.
func recordAudit(executed *cobra.Command, args []string, err error, start time.Time) {
	entry := auditEntry(executed, args)
	if entry == nil {
		return
	}
	auditlog.Record(entry, err, start)
}

func auditEntry(executed *cobra.Command, args []string) *auditlog.AuditEntry {
	if executed == nil || !executed.Runnable() {
		return nil
	}
	path := executed.CommandPath()
	for _, skip := range []string{"hexpair audit", "hexpair help", "hexpair completion"} {
		if strings.HasPrefix(path, skip) {
			return nil
		}
	}

	meta := auditlog.MetadataFromContext(executed.Context())
	return &auditlog.AuditEntry{
		Command:   path,
		Args:      strings.Join(auditlog.SanitizeArgs(args), " "),
		Color:     meta.Color,
		PairCount: meta.PairCount,
	}
}
