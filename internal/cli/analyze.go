package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"textfreq/internal/adapter/fs"
	"textfreq/internal/domain"
)

var (
	analyzeNGram int
	analyzeJSON  bool
	analyzeDocID string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Rank the most frequent words and n-grams of a text",
	Long: `Analyze a text file, standard input or a stored document.

The text is normalized, stopwords are removed and the top words are ranked
by frequency. With -n greater than 1 the top n-grams are ranked as well.

Examples:
  textfreq analyze cuento.txt           # Top words
  textfreq analyze cuento.txt -n 2      # Top words and bigrams
  cat cuento.txt | textfreq analyze -   # Read from stdin
  textfreq analyze --doc <id> -n 3      # Analyze a stored document`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeNGram, "ngram", "n", 0, "n-gram size (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	analyzeCmd.Flags().StringVar(&analyzeDocID, "doc", "", "analyze a stored document by ID")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	n := analyzeNGram
	if !cmd.Flags().Changed("ngram") {
		n = cfg.Analysis.DefaultNGram
	}

	var (
		name   string
		result domain.ProcessingResult
	)

	if analyzeDocID != "" {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		doc, res, err := newDocumentUseCase(st).Analyze(analyzeDocID, n)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		name, result = doc.Name, res
	} else {
		source, data, err := readInput(args)
		if err != nil {
			return err
		}
		if err := checkInputSize(data); err != nil {
			return err
		}
		text, _ := fs.DecodeText(data)
		name, result = source, newAnalyzeUseCase().Analyze(text, cfg.ClampNGram(n))
	}

	if analyzeJSON {
		return printJSON(os.Stdout, result)
	}

	fmt.Printf("Analysis of %s (n=%d)\n\n", name, result.NGramSize)
	printResult(os.Stdout, result)
	return nil
}
