// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/naka-gawa/readme-card/internal/config"
	"github.com/naka-gawa/readme-card/internal/gateway"
	"github.com/naka-gawa/readme-card/internal/usecase"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readme-card",
	Short: "Renders a readme card of a GitHub user's public repositories.",
	Long: `readme-card fetches the public repositories of USERNAME from GitHub and
renders a card with the name, language, description, open issues and license
onto a background image, writing the result as PNG.

Configuration is read from GITHUB_USER_TOKEN, USERNAME, GITHUB_API_BASE and
GITHUB_USER_AGENT, or from a .env file in the working directory.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.GatewayOptions(), logger)
		if err != nil {
			return err
		}
		renderer := usecase.NewRenderer(githubGateway, logger, cfg.Concurrency)
		return renderer.Run(cmd.Context(), usecase.RenderOptions{
			Owner:          cfg.Username,
			BackgroundPath: cfg.BackgroundPath,
			OutputPath:     cfg.OutputPath,
			AllCards:       cfg.AllCards,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.Flags().String("background", config.DefaultBackgroundPath, "Background image the card is placed on (built-in when empty)")
	rootCmd.Flags().StringP("out", "o", config.DefaultOutputPath, "Path of the rendered PNG")
	rootCmd.Flags().Bool("all-cards", false, "Stack a card for every repository instead of only the first")
	rootCmd.Flags().Int("concurrency", config.DefaultConcurrency, "Number of cards rendered at the same time")
}

// newLogger discards all logs unless --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Lookup("background") != nil {
		cfg.BackgroundPath, _ = flags.GetString("background")
		cfg.OutputPath, _ = flags.GetString("out")
		cfg.AllCards, _ = flags.GetBool("all-cards")
		cfg.Concurrency, _ = flags.GetInt("concurrency")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
