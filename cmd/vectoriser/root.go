package main

import (
	"io"

	"vectoriser/internal/config"
	vdialog "vectoriser/internal/dialog"
	"vectoriser/internal/gui"
	"vectoriser/internal/log"
	"vectoriser/internal/tui"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile string
	debug   bool
	logJSON bool
	logFile string
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// desktop window.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:     "vectoriser",
		Short:   "Pick an image to vectorise",
		Long:    `Vectoriser opens a window with a single button that lets you choose a JPEG or PNG image.`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(flags)
			if err != nil {
				return err
			}
			cfg = loaded
			configureLogging(cmd, cfg, flags)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg, flags)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/vectoriser/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "write log records as JSON")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "also append log records to this file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg, flags)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Run in the terminal",
		Long:  `Run the same image picker in the terminal, with a file browser in place of the desktop dialog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(vdialog.FromConfig(cfg))
		},
	})
	rootCmd.AddCommand(newConfigCmd(flags, func() *config.Config { return cfg }))

	return rootCmd
}

// loadConfig reads --config if given, otherwise the default location.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.cfgFile != "" {
		return config.LoadConfigFile(flags.cfgFile)
	}
	return config.LoadConfig()
}

// configureLogging applies config and flag settings to the package
// logger. The terminal UI owns stdout, so its records only go to the
// log file.
func configureLogging(cmd *cobra.Command, cfg *config.Config, flags *globalFlags) {
	if cmd.Flags().Changed("debug") {
		cfg.Logging.Debug = flags.debug
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Logging.JSON = flags.logJSON
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}

	var opts []log.Option
	if cmd.Name() == "tui" {
		opts = append(opts, log.WithOutput(io.Discard))
	} else {
		opts = append(opts, log.WithOutput(cmd.ErrOrStderr()))
	}
	if cfg.Logging.JSON {
		opts = append(opts, log.WithJSON())
	}
	if cfg.Logging.File != "" {
		opts = append(opts, log.WithFile(cfg.Logging.File))
	}

	log.Configure(opts...)
	log.SetDebug(cfg.Logging.Debug)
}

func runGUI(cfg *config.Config, flags *globalFlags) error {
	path := flags.cfgFile
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	log.Infof("Starting %s %s", cfg.Window.Title, version)
	return gui.Start(cfg, path)
}
