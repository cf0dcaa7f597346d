// Package cmd wires up the await-demo command line interface.
package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glimmerkit/await/internal/config"
	"github.com/glimmerkit/await/internal/demo"
	"github.com/glimmerkit/await/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "await-demo",
	Short: "Interactive demo of the await component",
	Long: `await-demo runs a small terminal UI showing two simulated fetches
rendered through the await component: one pending-then-successful, one that
can be made to fail. Delays and failure injection are configurable via flags,
config file, or AWAIT_DEMO_* environment variables.`,
	RunE: runDemo,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/await-demo/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().Bool("fail-report", false, "make the report fetch fail")
	_ = viper.BindPFlag("demo.fail_report", rootCmd.Flags().Lookup("fail-report"))

	rootCmd.Flags().Int("greeting-delay-ms", 600, "greeting fetch delay in milliseconds")
	_ = viper.BindPFlag("demo.greeting_delay_ms", rootCmd.Flags().Lookup("greeting-delay-ms"))

	rootCmd.Flags().Int("report-delay-ms", 1800, "report fetch delay in milliseconds")
	_ = viper.BindPFlag("demo.report_delay_ms", rootCmd.Flags().Lookup("report-delay-ms"))

	rootCmd.Flags().String("log-file", "", "write JSON logs to this file instead of stderr")
	_ = viper.BindPFlag("logging.file", rootCmd.Flags().Lookup("log-file"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/await-demo")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("AWAIT_DEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	p := tea.NewProgram(demo.New(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited with error: %w", err)
	}
	return nil
}
