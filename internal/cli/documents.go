package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var showJSON bool

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Store text documents for later analysis",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUpload,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(uploadCmd, listCmd, showCmd, deleteCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	docs := newDocumentUseCase(st)
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		doc, err := docs.Upload(path, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s  %s (%d bytes, %s)\n", doc.ID, doc.Name, doc.Size, doc.Encoding)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(args))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := newDocumentUseCase(st).List()
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No documents stored.")
		return nil
	}

	rows := make([][]string, len(list))
	for i, doc := range list {
		rows[i] = []string{doc.ID, doc.Name, strconv.FormatInt(doc.Size, 10), doc.UploadedAt.Format(time.DateTime)}
	}
	fmt.Println(renderTable(
		[]string{"ID", "NAME", "SIZE", "UPLOADED"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	docs := newDocumentUseCase(st)
	doc, err := docs.Get(args[0])
	if err != nil {
		return err
	}
	if showJSON {
		return printJSON(os.Stdout, doc)
	}

	text, err := docs.Content(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("ID:       %s\n", doc.ID)
	fmt.Printf("Name:     %s\n", doc.Name)
	fmt.Printf("Uploaded: %s\n", doc.UploadedAt.Format(time.DateTime))
	fmt.Printf("Size:     %d bytes\n", doc.Size)
	fmt.Printf("Encoding: %s\n", doc.Encoding)
	fmt.Printf("Hash:     %s\n\n", doc.Hash)
	fmt.Println(text)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := newDocumentUseCase(st).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
