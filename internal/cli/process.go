package cli

import (
	"os"

	"github.com/spf13/cobra"
	"textfreq/internal/adapter/fs"
	"textfreq/internal/domain"
)

var (
	processJSON  bool
	processDocID string
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Show how a text is normalized and filtered",
	Long: `Print the processed token stream of a text together with the symbols
that were removed, a sample of accented words and token counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&processJSON, "json", false, "output as JSON")
	processCmd.Flags().StringVar(&processDocID, "doc", "", "process a stored document by ID")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	var report domain.ProcessingReport

	if processDocID != "" {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		_, rep, err := newDocumentUseCase(st).Process(processDocID)
		if err != nil {
			return err
		}
		report = rep
	} else {
		_, data, err := readInput(args)
		if err != nil {
			return err
		}
		if err := checkInputSize(data); err != nil {
			return err
		}
		text, _ := fs.DecodeText(data)
		report = newAnalyzeUseCase().Inspect(text)
	}

	if processJSON {
		return printJSON(os.Stdout, report)
	}
	printReport(os.Stdout, report)
	return nil
}
