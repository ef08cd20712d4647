package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/report"
	"github.com/akyairhashvil/storyboard/internal/tui"
)

const fallbackWidth = 120

func newPreviewCmd(a *app) *cobra.Command {
	var (
		page    int
		pdfPath string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print one storyboard page as text",
		Long: `Print a page of the storyboard using the same layout as the PDF export.
Pages are numbered from 1. With --pdf the single-page PDF preview of the
first panels is written instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pdfPath != "" {
				return a.runPreviewPDF(cmd, pdfPath)
			}
			return a.runPreview(cmd, page)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "n", 1, "page number")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the PDF preview page to this file")
	return cmd
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func (a *app) runPreview(cmd *cobra.Command, page int) error {
	project, panels, err := a.projectPanels(cmd)
	if err != nil {
		return err
	}
	if len(panels) == 0 {
		return errNoPanels
	}
	doc := layout.Paginate(panels, layout.Options{
		Columns: a.cfg.Layout.Columns,
		Rows:    a.cfg.Layout.Rows,
		Title:   project.Name,
	})
	if page < 1 || page > len(doc.Pages) {
		return fmt.Errorf("page %d out of range 1-%d", page, len(doc.Pages))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPage(doc, page-1, terminalWidth()))
	return nil
}

func (a *app) runPreviewPDF(cmd *cobra.Command, path string) error {
	_, panels, err := a.projectPanels(cmd)
	if err != nil {
		return err
	}
	buf, err := report.PreviewPDF(panels)
	if err != nil {
		return err
	}
	if err := report.WriteFile(path, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote preview to %s\n", path)
	return nil
}
