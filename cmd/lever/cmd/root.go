// Package cmd implements the lever CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lever "github.com/talentops/lever-go"
	"github.com/talentops/lever-go/internal/cmd/globals"
	"github.com/talentops/lever-go/internal/cmd/output"
	"github.com/talentops/lever-go/pkg/errors"
	"github.com/talentops/lever-go/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lever",
	Short: "Lever Hire API CLI",
	Long: `lever is a command-line client for the Lever Hire API.

It lists and inspects opportunities, postings, pipeline stages, tags,
sources, users, and archive reasons. Authentication uses the LEVER_API_KEY
environment variable (or api_key in the config file); the key is sent as
the HTTP Basic username on every request.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.lever.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lever")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("lever")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// LEVER_API_KEY and LEVER_BASE_URL resolve via the env prefix
	_ = viper.BindEnv("api_key")
	_ = viper.BindEnv("base_url")

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// loadEnvFiles loads .env files from the working directory.
func loadEnvFiles() {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}
	_, err := output.ParseFormat(globalFlags.Output)
	return err
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(level)
	logging.SetDefault(logging.NewConsole().Level(level))
}

// newClient constructs the API client from configuration.
func newClient() (*lever.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set LEVER_API_KEY or api_key in the config file", errors.ErrAPIKeyRequired)
	}

	opts := []lever.Option{lever.WithUserAgent("lever-cli/" + Version)}
	if baseURL := viper.GetString("base_url"); baseURL != "" {
		opts = append(opts, lever.WithBaseURL(baseURL))
	}
	return lever.New(apiKey, opts...)
}

// formatOutput writes data in the globally selected format. Table
// format uses tableData; other formats serialize raw.
func formatOutput(cmd *cobra.Command, raw any, tableData output.Data) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format := output.DetectFormat(flags.Output)
	formatter := output.NewFormatter(format)

	if format == output.FormatTable {
		return formatter.Format(os.Stdout, tableData)
	}
	return formatter.Format(os.Stdout, raw)
}
