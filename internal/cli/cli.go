package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/panels/pkg/buildinfo"
	"github.com/matzehuels/panels/pkg/group"
	pio "github.com/matzehuels/panels/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "panels"

	// barWidth is the number of cells of the proportional bar in tables.
	barWidth = 40
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config *Config
}

// New creates a new CLI instance with a default logger and default
// configuration. The configuration files are read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Panels resolves and resizes panel group layouts",
		Long: `Panels resolves declared panel groups into percentage layouts and replays
resize gestures, collapses and expansions against them.

A panel group is declared in a TOML, YAML or JSON file. Sizes are percentages
of the group and always add up to 100.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPaths())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.config = cfg
			if c.Logger.GetLevel() <= log.DebugLevel {
				installLogHooks(c.Logger)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.dragCommand())
	root.AddCommand(c.collapseCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Group Factory
// =============================================================================

// openGroup reads a declaration file and builds the group it declares,
// applying the configured default direction and pointer correction.
func (c *CLI) openGroup(path string, opts ...group.Option) (*group.Group, *pio.Declaration, error) {
	d, err := pio.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	def, err := c.config.direction()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	base := []group.Option{
		group.WithDirection(d.DirectionOr(def)),
		group.WithCorrection(c.config.correction()),
		group.WithLogger(c.Logger.With("file", path)),
	}
	g := group.New(append(base, opts...)...)
	if err := g.SetSpecs(d.Specs()); err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, d, nil
}
