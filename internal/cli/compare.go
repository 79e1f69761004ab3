package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"textfreq/internal/adapter/fs"
	"textfreq/internal/domain"
)

var (
	compareSizes []int
	compareJSON  bool
	compareDocID string
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Compare the top n-grams of a text for several sizes",
	Long: `Analyze the same text once per n-gram size and print the results side by side.

Examples:
  textfreq compare cuento.txt                 # Sizes from config (2,3,4)
  textfreq compare cuento.txt --sizes 2,5     # Explicit sizes
  textfreq compare --doc <id> --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntSliceVar(&compareSizes, "sizes", nil, "n-gram sizes to compare (default from config)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output as JSON")
	compareCmd.Flags().StringVar(&compareDocID, "doc", "", "compare a stored document by ID")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	var results []domain.ProcessingResult

	if compareDocID != "" {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		_, res, err := newDocumentUseCase(st).Compare(compareDocID, compareSizes)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		results = res
	} else {
		_, data, err := readInput(args)
		if err != nil {
			return err
		}
		if err := checkInputSize(data); err != nil {
			return err
		}
		text, _ := fs.DecodeText(data)

		cfg := GetConfig()
		sizes := compareSizes
		if len(sizes) == 0 {
			sizes = cfg.Analysis.CompareSizes
		}
		clamped := make([]int, len(sizes))
		for i, n := range sizes {
			clamped[i] = cfg.ClampNGram(n)
		}
		results = newAnalyzeUseCase().Compare(text, clamped)
	}

	if compareJSON {
		return printJSON(os.Stdout, results)
	}

	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("=== n=%d ===\n", result.NGramSize)
		if result.NGramSize > 1 {
			printEntries(os.Stdout, result.TopNGrams)
		} else {
			printEntries(os.Stdout, result.TopUnigrams)
		}
	}
	return nil
}
