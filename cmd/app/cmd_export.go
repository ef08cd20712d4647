package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/storyboard/internal/database"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/report"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
	"github.com/akyairhashvil/storyboard/internal/util"
)

var errNoPanels = errors.New("project has no panels")

func newExportCmd(a *app) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the storyboard or shot list",
		Long: `Write a project to disk.

Available subcommands:
  pdf      - Storyboard PDF, three by two panels per page
  shotlist - Shot list as PDF, XML, YAML or CSV`,
	}

	var pdfOut string
	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export the storyboard PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExportPDF(cmd, pdfOut)
		},
	}
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "", "output file (default: reports dir)")

	var (
		listOut    string
		listFormat string
		listFilter string
	)
	shotCmd := &cobra.Command{
		Use:   "shotlist",
		Short: "Export the shot list",
		Long: `Export the shot list sorted by scene, setup and shot.

The filter takes kind=value where kind is camera, setup or scene, for
example --filter "camera=Camera 2". Text formats may be written to stdout
with --out -.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExportShotList(cmd, listFormat, listFilter, listOut)
		},
	}
	shotCmd.Flags().StringVarP(&listOut, "out", "o", "", "output file, - for stdout (default: reports dir)")
	shotCmd.Flags().StringVarP(&listFormat, "format", "f", string(shotlist.FormatPDF), "pdf, xml, yaml or csv")
	shotCmd.Flags().StringVar(&listFilter, "filter", "", "kind=value filter")

	exportCmd.AddCommand(pdfCmd, shotCmd)
	return exportCmd
}

func (a *app) projectPanels(cmd *cobra.Command) (models.Project, []models.Panel, error) {
	ctx := cmd.Context()
	project, err := a.resolveProject(ctx, false)
	if err != nil {
		return models.Project{}, nil, err
	}
	panels, err := a.db.GetPanels(ctx, project.ID)
	if err != nil {
		return models.Project{}, nil, err
	}
	return project, panels, nil
}

func (a *app) defaultOut(project models.Project, suffix string) string {
	return filepath.Join(a.cfg.Reports.Dir, util.SafeFileName(project.Name)+suffix)
}

func (a *app) runExportPDF(cmd *cobra.Command, out string) error {
	project, panels, err := a.projectPanels(cmd)
	if err != nil {
		return err
	}
	if len(panels) == 0 {
		return errNoPanels
	}
	if out == "" {
		out = a.defaultOut(project, ".pdf")
	}
	doc := layout.Paginate(panels, layout.Options{
		Columns: a.cfg.Layout.Columns,
		Rows:    a.cfg.Layout.Rows,
		Title:   project.Name,
	})
	if err := report.WriteStoryboard(out, doc); err != nil {
		return err
	}
	a.rememberExport(cmd, out)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", len(doc.Pages), out)
	return nil
}

func (a *app) runExportShotList(cmd *cobra.Command, formatName, filterExpr, out string) error {
	format, err := shotlist.ParseFormat(formatName)
	if err != nil {
		return err
	}
	filter, err := shotlist.ParseFilter(filterExpr)
	if err != nil {
		return err
	}
	project, panels, err := a.projectPanels(cmd)
	if err != nil {
		return err
	}
	e := shotlist.Export{
		Project:   project.Name,
		Generated: time.Now(),
		Panels:    shotlist.Sort(shotlist.Apply(filter, panels)),
	}
	if format == shotlist.FormatPDF {
		if len(e.Panels) == 0 {
			return errNoPanels
		}
		if out == "" {
			out = a.defaultOut(project, "_shotlist.pdf")
		}
		if err := report.WriteShotList(out, e); err != nil {
			return err
		}
		a.rememberExport(cmd, out)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d shots to %s\n", len(e.Panels), out)
		return nil
	}

	if out == "-" {
		return shotlist.Write(cmd.OutOrStdout(), format, e)
	}
	if out == "" {
		out = a.defaultOut(project, "_shotlist"+format.Ext())
	}
	if err := report.WriteFile(out, func(w io.Writer) error { return shotlist.Write(w, format, e) }); err != nil {
		return err
	}
	a.rememberExport(cmd, out)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d shots to %s\n", len(e.Panels), out)
	return nil
}

func (a *app) rememberExport(cmd *cobra.Command, path string) {
	util.Logger().Info("export written", zap.String("path", path))
	if err := a.db.SetSetting(cmd.Context(), database.SettingLastExport, filepath.Dir(path)); err != nil {
		util.LogError("remember export dir", err)
	}
}
