package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docsum/config"
	"docsum/internal/logger"
)

var (
	cfgFile    string
	logLevel   string
	saveConfig string
	cfg        *config.Config
	log        logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docsum FILE [FILE...]",
	Short: "Summarise text files and extract named entities",
	Long: `docsum reads one or more text files, summarises them with a pretrained
summarisation model in fixed-size token windows, and extracts named entities.
Results are printed and saved next to the first file as <name>_summarised.txt.

Example usage:
  docsum notes.txt                      # Summarise one file
  docsum ch1.txt ch2.txt ch3.txt        # Summarise files as one document
  docsum 'reports/**/*.md'              # Expand a glob pattern
  docsum --save-config docsum.yaml      # Write the effective configuration`,
	Args: func(cmd *cobra.Command, args []string) error {
		if saveConfig != "" {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine; variables may come from the shell.
		_ = godotenv.Load()

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			var wd string
			wd, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log = logger.NewLogger(&logger.Config{
			Level:      logger.ParseLevel(cfg.Logging.Level),
			Output:     cmd.ErrOrStderr(),
			JSON:       cfg.Logging.JSON,
			TimeFormat: "15:04:05",
		})
		return nil
	},
	RunE: runSummarise,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docsum.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the effective configuration to this path and exit")
}

func GetConfig() *config.Config {
	return cfg
}
