package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"JaundiceRate/internal/app"
	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/logging"
)

var inputURLs string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a batch of article URLs and print the results",
	Long: `Reads article URLs from the --urls flag (comma-separated) or from standard
input (one per line) and prints the status, jaundice rate, and word count of
every article once the whole batch has finished.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := collectURLs()
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			return fmt.Errorf("no urls to process")
		}

		cfg := loadConfig()
		logger := logging.New(cfg.Logging.Level)

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}

		jobs := make([]domain.ArticleJob, 0, len(urls))
		for _, u := range urls {
			jobs = append(jobs, domain.ArticleJob{URL: u})
		}

		results := application.ScanBatch(cmd.Context(), jobs)
		printResults(cmd.OutOrStdout(), results)
		return nil
	},
}

func collectURLs() ([]string, error) {
	if inputURLs != "" {
		var urls []string
		for _, part := range strings.Split(inputURLs, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
		return urls, nil
	}

	var urls []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read urls from stdin: %w", err)
	}
	return urls, nil
}

func printResults(out io.Writer, results []domain.ProcessingResult) {
	okCount := 0
	for _, res := range results {
		fmt.Fprintf(out, "Title: %s\n", res.Title())
		fmt.Fprintf(out, "Status: %s\n", res.Status)
		if res.Score != nil {
			fmt.Fprintf(out, "Rating: %.2f\n", *res.Score)
		} else {
			fmt.Fprintln(out, "Rating: -")
		}
		if res.WordCount != nil {
			fmt.Fprintf(out, "Words in article: %d\n", *res.WordCount)
		} else {
			fmt.Fprintln(out, "Words in article: -")
		}
		if res.ElapsedSeconds != nil {
			fmt.Fprintf(out, "Analysis took: %.2f sec\n", *res.ElapsedSeconds)
		}
		fmt.Fprintln(out)

		if res.Status == domain.StatusOK {
			okCount++
		}
	}

	fmt.Fprintf(out, "Done: %d succeeded, %d failed\n", okCount, len(results)-okCount)
}

func init() {
	scanCmd.Flags().StringVarP(&inputURLs, "urls", "u", "", "comma-separated list of article URLs")
}
