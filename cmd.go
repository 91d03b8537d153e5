package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fundverse/fundtui/config"
	"github.com/fundverse/fundtui/fv"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile   string
	debug     bool
	endpoint  string
	token     string
	principal string
	userName  string
	userEmail string
	fvc       *fv.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fundtui",
	Short: "A terminal UI and CLI for FundVerse",
	Long:  `A terminal-based interface and CLI for browsing and funding campaigns on the FundVerse crowdfunding platform.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg := appConfig()

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		if cfg.Endpoint == "" {
			return errors.New("gateway endpoint is required (set via --endpoint flag, " +
				"FUNDVERSE_ENDPOINT environment variable, or config file)")
		}

		if cfg.PayeePrincipal == "" {
			return errors.New("payee principal is required (set via --payee-principal flag, " +
				"FUNDVERSE_PAYEE_PRINCIPAL environment variable, or config file)")
		}

		// Create FundVerse client
		var err error
		fvc, err = fv.NewClient(cfg.Endpoint, fv.WithToken(cfg.Token))
		if err != nil {
			return fmt.Errorf("failed to create FundVerse client: %w", err)
		}

		loggingTransport := newLoggingTransport(fvc.HTTP.Transport, log.Default())
		fvc.HTTP.Transport = loggingTransport

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), appConfig(), fvc)
	},
}

// appConfig assembles the effective configuration from flags, env and
// config file. The session it describes is injected into the TUI
// model; nothing reads the flag globals after startup.
func appConfig() config.Config {
	var colors config.Colors
	_ = viper.UnmarshalKey("colors", &colors)

	return config.Config{
		Debug:          debug,
		Endpoint:       endpoint,
		Token:          token,
		PayeePrincipal: principal,
		Name:           userName,
		Email:          userEmail,
		Colors:         colors,
	}
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fundtui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "the FundVerse gateway URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "the gateway API token")
	rootCmd.PersistentFlags().StringVar(&principal, "payee-principal", "",
		"the backend's custodial principal that receives contributions")
	rootCmd.PersistentFlags().StringVar(&userName, "name", "", "display name sent on user registration")
	rootCmd.PersistentFlags().StringVar(&userEmail, "email", "", "email sent on user registration")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("payee_principal", rootCmd.PersistentFlags().Lookup("payee-principal"))
	_ = viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	_ = viper.BindPFlag("email", rootCmd.PersistentFlags().Lookup("email"))

	// Bind environment variables
	_ = viper.BindEnv("endpoint", "FUNDVERSE_ENDPOINT")
	_ = viper.BindEnv("token", "FUNDVERSE_API_TOKEN")
	_ = viper.BindEnv("payee_principal", "FUNDVERSE_PAYEE_PRINCIPAL")

	// Add subcommands
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(ideaCmd)
	rootCmd.AddCommand(contributeCmd)
	rootCmd.AddCommand(docCmd)
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
		viper.SetConfigName("fundtui")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "fundtui"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "fundtui"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/fundtui")
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
	if !rootCmd.PersistentFlags().Changed("endpoint") {
		endpoint = viper.GetString("endpoint")
	}
	if !rootCmd.PersistentFlags().Changed("token") {
		token = viper.GetString("token")
	}
	if !rootCmd.PersistentFlags().Changed("payee-principal") {
		principal = viper.GetString("payee_principal")
	}
	if !rootCmd.PersistentFlags().Changed("name") {
		userName = viper.GetString("name")
	}
	if !rootCmd.PersistentFlags().Changed("email") {
		userEmail = viper.GetString("email")
	}
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

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
	}
	return outputFormat, nil
}
