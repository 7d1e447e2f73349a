package cmd

import (
	"fmt"
	"strings"
	"time"

	"ttrpg-pi/core/config"
	"ttrpg-pi/feature/smoke"

	"github.com/spf13/cobra"
)

var (
	testURL     string
	testTimeout time.Duration
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Exercise a running API server",
	Long: `Issues the documented requests (root, health, config, play 1-8, POST play and
the invalid inputs) against a running server and reports each result.
Every play case expects its audio file to be present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := testURL
		if base == "" {
			base = "http://localhost:5000"
			if cfg, err := config.LoadConfig(configFile); err == nil {
				base = fmt.Sprintf("http://localhost:%d", cfg.Port)
			}
		}

		line := strings.Repeat("=", 60)
		fmt.Println(line)
		fmt.Println("TTRPG Pi API Test Suite")
		fmt.Println(line)
		fmt.Printf("Testing API at: %s\n\n", base)

		results := smoke.Run(cmd.Context(), base, smoke.DefaultSuite(), testTimeout)
		for _, r := range results {
			fmt.Println(r.String())
		}

		passed := smoke.Passed(results)
		fmt.Println()
		fmt.Println(line)
		fmt.Printf("Results: %d/%d tests passed\n", passed, len(results))
		fmt.Println(line)

		if passed != len(results) {
			return fmt.Errorf("%d of %d API tests failed", len(results)-passed, len(results))
		}
		fmt.Println("✓ All tests passed!")
		return nil
	},
}

func init() {
	testCmd.Flags().StringVar(&testURL, "url", "", "Base URL of the API (default http://localhost:<port from config>)")
	testCmd.Flags().DurationVar(&testTimeout, "timeout", 5*time.Second, "Per-request timeout")
	RootCmd.AddCommand(testCmd)
}
