package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xraph/sidenav/config"
	"github.com/xraph/sidenav/errors"
	"github.com/xraph/sidenav/link"
	"github.com/xraph/sidenav/logger"
	"github.com/xraph/sidenav/manifest"
	"github.com/xraph/sidenav/server"
	"github.com/xraph/sidenav/sidebar"
)

// Version information (set by ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:           "sidenav",
		Short:         "Render and serve sidebar navigation from a manifest",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch m := colorMode(mode); m {
			case colorAuto, colorAlways, colorNever:
				configureColors(m)
				return nil
			default:
				return errors.ErrValidationError("color", fmt.Errorf("must be auto, always or never: %q", mode))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&mode, "color", string(colorAuto), "color output: auto, always or never")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}

// loadNav reads, validates and builds a manifest.
func loadNav(path string) (*manifest.Manifest, *sidebar.Sidebar, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}

	sb, err := m.Build()
	if err != nil {
		return nil, nil, err
	}

	return m, sb, nil
}

func newRenderCmd() *cobra.Command {
	var (
		manifestPath string
		location     string
		collapsed    bool
		anchors      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the sidebar HTML for a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sb, err := loadNav(manifestPath)
			if err != nil {
				return report(cmd, err)
			}

			opts := []sidebar.ScopeOption{sidebar.WithCollapsed(collapsed)}
			if anchors {
				opts = append(opts, sidebar.WithLinker(link.Anchor()))
			}

			if err := sb.RenderTo(cmd.OutOrStdout(), sidebar.NewScope(location, opts...)); err != nil {
				return report(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "nav.yaml", "navigation manifest (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&location, "location", "l", "/", "current location")
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "render the collapsed sidebar")
	cmd.Flags().BoolVar(&anchors, "anchors", false, "render plain links instead of htmx links")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a manifest for problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(manifestPath)
			if err != nil {
				return report(cmd, err)
			}

			if err := m.Validate(); err != nil {
				return report(cmd, err)
			}

			items := 0
			for _, group := range m.Groups {
				items += countEntries(group.Items)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid %s\n",
				boldGreen("✓"), manifestPath, gray(fmt.Sprintf("(%d groups, %d items)", len(m.Groups), items)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "nav.yaml", "navigation manifest (.yaml, .yml or .json)")

	return cmd
}

func countEntries(entries []manifest.Entry) int {
	n := 0
	for _, e := range entries {
		n++
		n += countEntries(e.Items)
	}

	return n
}

func newServeCmd() *cobra.Command {
	var (
		configPath   string
		manifestPath string
		addr         string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with the sidebar",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()

			if configPath != "" {
				loaded, err := config.LoadFile(configPath)
				if err != nil {
					return report(cmd, err)
				}

				cfg = loaded
			}

			if err := cfg.ApplyEnv(); err != nil {
				return report(cmd, err)
			}

			if cmd.Flags().Changed("manifest") {
				cfg.Manifest = manifestPath
			}

			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			log := newLogger(cfg.Logging)
			defer func() { _ = log.Sync() }()

			m, sb, err := loadNav(cfg.Manifest)
			if err != nil {
				return report(cmd, err)
			}

			srv, err := server.New(cfg, sb, log, server.WithManifest(m))
			if err != nil {
				return report(cmd, err)
			}

			printBanner(cmd, cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (yaml)")
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "nav.yaml", "navigation manifest (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func printBanner(cmd *cobra.Command, cfg config.Config) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", boldCyan("sidenav"), gray(version))
	fmt.Fprintf(out, "  %-10s %s\n", "listen", green(cfg.Addr))
	fmt.Fprintf(out, "  %-10s %s\n", "manifest", cfg.Manifest)

	if cfg.EnableMetrics {
		fmt.Fprintf(out, "  %-10s %s\n", "metrics", cfg.MetricsPath)
	}

	if cfg.DefaultCollapsed {
		fmt.Fprintf(out, "  %-10s %s\n", "sidebar", yellow("collapsed"))
	}
}

// report prints every problem in err and returns it.
func report(cmd *cobra.Command, err error) error {
	out := cmd.ErrOrStderr()

	msgs := errors.Messages(err)
	if len(msgs) == 1 {
		fmt.Fprintf(out, "%s %s\n", boldRed("error:"), msgs[0])
		return err
	}

	fmt.Fprintf(out, "%s %d problems\n", boldRed("error:"), len(msgs))

	for _, msg := range msgs {
		fmt.Fprintf(out, "  %s %s\n", red("✗"), msg)
	}

	return err
}

// newLogger picks the JSON logger for production or json format, the colored
// console logger otherwise.
func newLogger(cfg logger.LoggingConfig) logger.Logger {
	level := logger.ParseLevel(cfg.Level)

	if production(cfg) {
		return logger.NewProductionLogger(level)
	}

	return logger.NewDevelopmentLogger(level)
}

func production(cfg logger.LoggingConfig) bool {
	return cfg.Environment == "production" || cfg.Format == "json"
}
