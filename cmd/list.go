package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/naka-gawa/readme-card/internal/gateway"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Lists the public repositories shown on cards as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, owner, err := newFetcher(cmd)
		if err != nil {
			return err
		}
		repos, err := fetcher.FetchPublicRepos(cmd.Context(), owner)
		if err != nil {
			return err
		}
		return printJSON(cmd, repos)
	},
}

var gistsCmd = &cobra.Command{
	Use:   "gists",
	Short: "Lists the public gists with a description as JSON",
	Long:  `Lists the public gists of USERNAME that have a description. Gists are not rendered onto cards.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, owner, err := newFetcher(cmd)
		if err != nil {
			return err
		}
		gists, err := fetcher.FetchPublicGists(cmd.Context(), owner)
		if err != nil {
			return err
		}
		return printJSON(cmd, gists)
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(gistsCmd)
}

func newFetcher(cmd *cobra.Command) (gateway.Fetcher, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	fetcher, err := gateway.NewGitHubGateway(cfg.GatewayOptions(), newLogger(cmd))
	if err != nil {
		return nil, "", err
	}
	return fetcher, cfg.Username, nil
}

// printJSON writes v as pretty-printed JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
