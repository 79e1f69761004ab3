package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"textfreq/config"
	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/adapter/store"
	"textfreq/internal/domain"
	"textfreq/internal/usecase"
)

func main() {
	dataDir := flag.String("dir", ".", "Data directory holding .textfreq/documents.db")
	docID := flag.String("doc", "", "Benchmark a single stored document (default: all)")
	sizesFlag := flag.String("n", "1,2,3", "Comma-separated n-gram sizes")
	runs := flag.Int("runs", 5, "Timed runs per document and size")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -n: %v\n", err)
		os.Exit(1)
	}
	if *runs <= 0 {
		*runs = 1
	}

	cfg, err := config.LoadFromDir(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	st, err := store.NewBoltStore(config.StoreDBPath(*dataDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening document store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	docs, err := selectDocuments(st, *docID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing documents: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		fmt.Println("No documents stored - run 'textfreq upload' or 'textfreq ingest' first")
		os.Exit(1)
	}

	tok := analyzer.NewTokenizer(nil)
	az := usecase.NewAnalyzeUseCase(tok, cfg.Analysis.TopK)

	fmt.Println("FREQUENCY ANALYSIS BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Documents:     %d\n", len(docs))
	fmt.Printf("Stopword set:  %s\n", tok.StopwordVersion())
	fmt.Printf("Sizes:         %v\n", sizes)
	fmt.Printf("Runs:          %d\n\n", *runs)

	var totalBytes int64
	var totalElapsed time.Duration
	for _, doc := range docs {
		text, err := st.GetContent(doc.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", doc.ID, err)
			continue
		}

		fmt.Printf("%s (%d bytes)\n", doc.Name, len(text))
		fmt.Println(strings.Repeat("-", 70))
		for _, n := range sizes {
			n = cfg.ClampNGram(n)

			var result domain.ProcessingResult
			start := time.Now()
			for i := 0; i < *runs; i++ {
				result = az.Analyze(text, n)
			}
			elapsed := time.Since(start)
			perRun := elapsed / time.Duration(*runs)

			totalBytes += int64(len(text)) * int64(*runs)
			totalElapsed += elapsed

			fmt.Printf("  n=%-3d %10s/run  %8d tokens  %s\n",
				n, perRun.Round(time.Microsecond), result.TotalFilteredTokens, topItem(result))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 70))
	if totalElapsed > 0 {
		mbps := float64(totalBytes) / (1 << 20) / totalElapsed.Seconds()
		fmt.Printf("Throughput: %.2f MiB/s over %s\n", mbps, totalElapsed.Round(time.Millisecond))
	}
}

func parseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func selectDocuments(st *store.BoltStore, id string) ([]domain.Document, error) {
	if id == "" {
		return st.ListDocuments()
	}
	doc, err := st.GetDocument(id)
	if err != nil {
		return nil, err
	}
	return []domain.Document{doc}, nil
}

func topItem(result domain.ProcessingResult) string {
	entries := result.TopUnigrams
	if result.NGramSize > 1 {
		entries = result.TopNGrams
	}
	if len(entries) == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("top: %q x%d", entries[0].Item, entries[0].Count)
}
