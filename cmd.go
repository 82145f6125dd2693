package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerbook/ledgertui/config"
	"github.com/ledgerbook/ledgertui/ledger"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	baseURL  string
	pageSize int
	lgc      *ledger.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgertui",
	Short: "A terminal UI and CLI for the ledgerbook accounting API",
	Long:  `A terminal-based admin console for managing accounts and account entries in a ledgerbook server.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg := buildConfig()

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		if cfg.BaseURL == "" {
			return errors.New("API base URL is required (set via --base-url flag, " +
				"LEDGERTUI_BASE_URL environment variable, or config file)")
		}

		var err error
		lgc, err = ledger.NewClient(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to create ledgerbook client: %w", err)
		}

		lgc.HTTP.Transport = newLoggingTransport(http.DefaultTransport, log.Default())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), buildConfig(), lgc)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ledgertui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL of the ledgerbook API")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", config.DefaultPageSize,
		"server page size for account entries")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("page_size", rootCmd.PersistentFlags().Lookup("page-size"))

	// Bind environment variables
	_ = viper.BindEnv("base_url", "LEDGERTUI_BASE_URL")

	// Add subcommands
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(entriesCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("ledgertui")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "ledgertui"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "ledgertui"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/ledgertui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("base-url") {
		baseURL = viper.GetString("base_url")
	}
	if !rootCmd.PersistentFlags().Changed("page-size") && viper.IsSet("page_size") {
		pageSize = viper.GetInt("page_size")
	}
}

// buildConfig assembles the effective configuration from flags, environment
// and the config file.
func buildConfig() config.Config {
	return config.Config{
		Debug:    debug,
		BaseURL:  baseURL,
		PageSize: pageSize,
		Colors: config.Colors{
			Primary:       viper.GetString("colors.primary"),
			Error:         viper.GetString("colors.error"),
			Success:       viper.GetString("colors.success"),
			Warning:       viper.GetString("colors.warning"),
			Muted:         viper.GetString("colors.muted"),
			Credit:        viper.GetString("colors.credit"),
			Debit:         viper.GetString("colors.debit"),
			Border:        viper.GetString("colors.border"),
			Background:    viper.GetString("colors.background"),
			Text:          viper.GetString("colors.text"),
			SecondaryText: viper.GetString("colors.secondary_text"),
		},
	}
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("failed to get output flag: %w", err)
	}

	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	return outputFormat, nil
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
