package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/database"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/tui"
	"github.com/akyairhashvil/storyboard/internal/util"
)

// app carries state shared by every command after PersistentPreRunE.
type app struct {
	cfg     config.Config
	db      *database.Database
	debug   bool
	dbPath  string
	project string
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string, out io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	defer func() {
		if err := a.close(); err != nil {
			util.LogError("close database", err)
		}
	}()
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Assemble storyboards and shot lists",
		Long: `Storyboard keeps panels for a film project, lays them out three by two
per page and exports storyboard and shot list PDFs.

Run without arguments to open the interactive editor.`,
		Version:           tui.VersionLabel(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "database file (overrides config)")
	root.PersistentFlags().StringVarP(&a.project, "project", "p", "", "project name or slug")

	root.AddCommand(
		newExportCmd(a),
		newPreviewCmd(a),
		newImportCmd(a),
		newDumpCmd(a),
		newProjectsCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(util.DataDir(config.AppName), util.ReportsDir(config.AppName))
	if err != nil {
		return err
	}
	a.cfg = cfg
	level := cfg.Log.Level
	if a.debug {
		level = "debug"
	}
	if _, err := util.InitLogger(cfg.Log.File, level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	path := cfg.Database.Path
	if a.dbPath != "" {
		path = a.dbPath
	}
	db, err := database.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	a.db = db
	util.Logger().Debug("database opened", zap.String("path", path), zap.String("command", cmd.Name()))
	return nil
}

func (a *app) close() error {
	_ = util.Logger().Sync()
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// resolveProject finds the project named by --project, falling back to the
// last project used and then the configured default. The default project is
// created on demand; a named project must exist unless create is set.
func (a *app) resolveProject(ctx context.Context, create bool) (models.Project, error) {
	name := strings.TrimSpace(a.project)
	if name == "" {
		if slug, ok, err := a.db.GetSetting(ctx, database.SettingLastProject); err == nil && ok && slug != "" {
			if p, err := a.db.GetProjectBySlug(ctx, slug); err == nil {
				return p, nil
			}
		}
		return a.db.EnsureDefaultProject(ctx, a.cfg.UI.DefaultProject)
	}
	p, err := a.findProject(ctx, name)
	if errors.Is(err, database.ErrNotFound) && create {
		return a.db.CreateProject(ctx, name)
	}
	if errors.Is(err, database.ErrNotFound) {
		return models.Project{}, fmt.Errorf("project %q not found", name)
	}
	return p, err
}

// findProject matches name as a slug, then as a project name (ignoring
// case), then as a name to slugify. Renamed projects keep their old slug.
func (a *app) findProject(ctx context.Context, name string) (models.Project, error) {
	if p, err := a.db.GetProjectBySlug(ctx, name); !errors.Is(err, database.ErrNotFound) {
		return p, err
	}
	projects, err := a.db.GetProjects(ctx)
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p, nil
		}
	}
	return a.db.GetProjectBySlug(ctx, util.Slugify(name))
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	project, err := a.resolveProject(ctx, true)
	if err != nil {
		return err
	}
	if err := a.db.SetSetting(ctx, database.SettingLastProject, project.Slug); err != nil {
		util.LogError("remember project", err)
	}
	model := tui.New(ctx, a.db, tui.Options{
		Project:    project,
		ReportsDir: a.cfg.Reports.Dir,
		Columns:    a.cfg.Layout.Columns,
		Rows:       a.cfg.Layout.Rows,
		Theme:      a.cfg.UI.Theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
