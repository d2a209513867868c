package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/filemenu/internal/config"
	"github.com/harrison/filemenu/internal/logger"
	"github.com/harrison/filemenu/internal/menu"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filemenu
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filemenu",
		Short: "Interactive numbered file browser",
		Long: `filemenu lists the files of a directory as a numbered menu, asks you to
pick one, confirms the choice and prints the file with numbered lines.

The menu is rebuilt after every action, so files created or removed while
the session runs show up at the next prompt. Every action is appended to
<log-dir>/filemenu.log.

Configuration is loaded from .filemenu.yaml if present.
CLI flags override configuration file settings.

Examples:
  filemenu                          # browse the system temp directory
  filemenu --dir ./notes            # browse another directory
  filemenu -d . -e go.sum -e '*.bak'  # hide names and glob patterns
  filemenu --log-dir /var/log/filemenu --log-level debug`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSession,
	}

	cmd.Flags().StringP("dir", "d", "", "Directory to browse (default: system temp directory)")
	cmd.Flags().StringArrayP("exclude", "e", nil, "File name or glob pattern to hide (repeatable, replaces the configured list)")
	cmd.Flags().String("log-dir", "", "Directory for the action log (default: <dir>/logs)")
	cmd.Flags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: "+config.DefaultConfigFile+")")

	cmd.AddCommand(NewConfigCommand())

	return cmd
}

// loadConfig reads --config (or the default file) and validates it after
// applying every flag the user actually set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	var dirPtr, logDirPtr, logLevelPtr *string
	var excludePtr *[]string
	var noColorPtr *bool

	if cmd.Flags().Changed("dir") {
		dir, _ := cmd.Flags().GetString("dir")
		dirPtr = &dir
	}
	if cmd.Flags().Changed("exclude") {
		exclude, _ := cmd.Flags().GetStringArray("exclude")
		excludePtr = &exclude
	}
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	if cmd.Flags().Changed("no-color") {
		noColor, _ := cmd.Flags().GetBool("no-color")
		noColorPtr = &noColor
	}

	cfg.MergeWithFlags(dirPtr, excludePtr, logDirPtr, logLevelPtr, noColorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runSession implements the interactive browsing session
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	excluder, err := cfg.Excluder()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.NoColor {
		consoleLog.SetColor(false)
	}
	actions := logger.NewActionLogger(cfg.ResolvedLogDir(), consoleLog.WithPrefix("[action-log]"))
	consoleLog.LogDebug(fmt.Sprintf("recording actions to %s", actions.Path()))

	session := menu.NewSession(menu.SessionConfig{
		Dir:      cfg.TargetDir,
		Provider: menu.NewFileMenu(cfg.TargetDir, excluder),
		In:       bufio.NewReader(cmd.InOrStdin()),
		Out:      cmd.OutOrStdout(),
		Warn:     cmd.ErrOrStderr(),
		Actions:  actions,
		Logger:   consoleLog,
	})

	// Signals keep their default behavior: the loop blocks in a read
	// that a cancelled context could not interrupt.
	err = session.Run(cmdContext(cmd))
	if errors.Is(err, menu.ErrNoFiles) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
