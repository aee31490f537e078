// PDF commands for the cardbox CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	pdfFileName string
	pdfFilePath string
	pdfRemote   string
	pdfTags     string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Manage imported PDFs",
}

var pdfAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a local or remote PDF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pdfFilePath == "" && pdfRemote == "" {
			return fmt.Errorf("one of --path or --url is required")
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		pdf := &types.Pdf{
			FileName:  pdfFileName,
			FilePath:  pdfFilePath,
			IsLocal:   pdfRemote == "",
			RemoteURL: pdfRemote,
			Tags:      splitList(pdfTags),
		}
		if pdf.FileName == "" && pdf.FilePath != "" {
			pdf.FileName = filepath.Base(pdf.FilePath)
		}
		pdf, err = backend.Pdfs().Create(pdf)
		if err != nil {
			return fmt.Errorf("add pdf: %w", err)
		}
		return printResult(pdf, func() {
			fmt.Printf("Added pdf %d: %s\n", pdf.ID, pdf.FileName)
		})
	},
}

var pdfGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a PDF record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		pdf, err := backend.Pdfs().Get(id)
		if err != nil {
			return fmt.Errorf("get pdf %d: %w", id, err)
		}
		return printResult(pdf, func() {
			loc := pdf.FilePath
			if !pdf.IsLocal {
				loc = pdf.RemoteURL
			}
			fmt.Printf("pdf %d: %s (%s)\n", pdf.ID, pdf.FileName, loc)
		})
	},
}

var pdfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List PDF records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		pdfs, err := backend.Pdfs().List()
		if err != nil {
			return fmt.Errorf("list pdfs: %w", err)
		}
		return printResult(pdfs, func() {
			for _, p := range pdfs {
				fmt.Printf("%d\t%s\n", p.ID, p.FileName)
			}
		})
	},
}

var pdfDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a PDF record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.Pdfs().Delete(id)
		if err != nil {
			return fmt.Errorf("delete pdf %d: %w", id, err)
		}
		fmt.Printf("Deleted %d record(s)\n", n)
		return nil
	},
}

func init() {
	pdfAddCmd.Flags().StringVar(&pdfFileName, "name", "", "display name (default: base of --path)")
	pdfAddCmd.Flags().StringVar(&pdfFilePath, "path", "", "local file path")
	pdfAddCmd.Flags().StringVar(&pdfRemote, "url", "", "remote URL")
	pdfAddCmd.Flags().StringVar(&pdfTags, "tags", "", "comma-separated tags")

	pdfCmd.AddCommand(pdfAddCmd)
	pdfCmd.AddCommand(pdfGetCmd)
	pdfCmd.AddCommand(pdfListCmd)
	pdfCmd.AddCommand(pdfDeleteCmd)
}
