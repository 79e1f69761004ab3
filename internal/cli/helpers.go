package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"textfreq/config"
	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/adapter/store"
	"textfreq/internal/domain"
	"textfreq/internal/usecase"
)

// openStore opens the document database under the data directory,
// migrating it when needed.
func openStore() (*store.BoltStore, error) {
	dir := GetRootDir()
	if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .textfreq directory: %w", err)
	}

	st, err := store.NewBoltStore(config.StoreDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	migration, err := st.CheckMigration()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	if migration.Unsupported {
		st.Close()
		return nil, fmt.Errorf("cannot open document store: %s", migration.Reason)
	}
	if migration.NeedsMigration {
		GetLogger().Info("migrating document store")
		if err := st.Migrate(); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return st, nil
}

func newAnalyzeUseCase() *usecase.AnalyzeUseCase {
	return usecase.NewAnalyzeUseCase(analyzer.NewTokenizer(nil), GetConfig().Analysis.TopK)
}

func newDocumentUseCase(st *store.BoltStore) *usecase.DocumentUseCase {
	return usecase.NewDocumentUseCase(st, newAnalyzeUseCase(), GetConfig(), GetLogger())
}

// readInput reads a file path or stdin ("-" or no argument).
func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	return args[0], data, nil
}

func checkInputSize(data []byte) error {
	if limit := GetConfig().Analysis.MaxInputBytes; limit > 0 && int64(len(data)) > limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, len(data), limit)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func printResult(w io.Writer, result domain.ProcessingResult) {
	fmt.Fprintf(w, "Total filtered tokens: %d\n", result.TotalFilteredTokens)
	fmt.Fprintf(w, "  Original tokens (approx.):   %d\n", result.Stats.OriginalTokenEstimate)
	fmt.Fprintf(w, "  Stopwords removed (approx.): %d\n", result.Stats.StopwordsRemovedEstimate)

	fmt.Fprintf(w, "\nTop words:\n")
	printEntries(w, result.TopUnigrams)

	if result.NGramSize > 1 {
		fmt.Fprintf(w, "\nTop %d-grams:\n", result.NGramSize)
		printEntries(w, result.TopNGrams)
	}
}

func printEntries(w io.Writer, entries []domain.FrequencyEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.Item, strconv.Itoa(e.Count), bar(e.Count, entries[0].Count)}
	}
	fmt.Fprintln(w, renderTable(
		[]string{"#", "ITEM", "COUNT", ""},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	))
}

// bar renders a histogram bar scaled to the largest count.
func bar(count, top int) string {
	const width = 30
	if top <= 0 {
		return ""
	}
	n := count * width / top
	if n == 0 && count > 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}

func printReport(w io.Writer, report domain.ProcessingReport) {
	symbols := "none"
	if len(report.RemovedSymbols) > 0 {
		symbols = strings.Join(report.RemovedSymbols, ", ")
	}
	fmt.Fprintf(w, "Original words:     %d\n", report.OriginalWordCount)
	fmt.Fprintf(w, "Filtered tokens:    %d\n", report.FilteredTokenCount)
	fmt.Fprintf(w, "Stopwords removed:  %d\n", report.StopwordsRemoved)
	fmt.Fprintf(w, "Removed symbols:    %s\n", symbols)
	fmt.Fprintf(w, "Accented words:     %s\n", strings.Join(report.AccentedWords, ", "))
	fmt.Fprintf(w, "Stopword set:       %s\n", report.StopwordSetVersion)
	fmt.Fprintf(w, "\nProcessed text:\n%s\n", report.ProcessedText)
}
