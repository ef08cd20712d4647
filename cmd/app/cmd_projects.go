package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/database"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and manage projects",
		Args:  cobra.NoArgs,
		RunE:  a.runProjectsList,
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.db.CreateProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", p.Name, p.Slug)
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <slug> <name>",
		Short: "Rename a project; the slug is kept",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.db.GetProjectBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.db.RenameProject(ctx, p.ID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", p.Slug, args[1])
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a project and its panels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.db.GetProjectBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.db.DeleteProject(ctx, p.ID); err != nil {
				return err
			}
			if last, ok, _ := a.db.GetSetting(ctx, database.SettingLastProject); ok && last == p.Slug {
				_ = a.db.SetSetting(ctx, database.SettingLastProject, "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", p.Slug)
			return nil
		},
	}

	cmd.AddCommand(createCmd, renameCmd, deleteCmd)
	return cmd
}

func (a *app) runProjectsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	projects, err := a.db.GetProjects(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects yet.")
		return nil
	}
	last, _, _ := a.db.GetSetting(ctx, database.SettingLastProject)
	fmt.Fprintf(out, "  %-20s %-24s %6s  %s\n", "SLUG", "NAME", "PANELS", "UPDATED")
	for _, p := range projects {
		panels, err := a.db.GetPanels(ctx, p.ID)
		if err != nil {
			return err
		}
		marker := " "
		if p.Slug == last {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-20s %-24s %6d  %s\n", marker, p.Slug, p.Name, len(panels), p.UpdatedAt.Format(config.DateTimeLayout))
	}
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration file",
	}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database.path      = %s\n", c.Database.Path)
			fmt.Fprintf(out, "reports.dir        = %s\n", c.Reports.Dir)
			fmt.Fprintf(out, "layout.columns     = %d\n", c.Layout.Columns)
			fmt.Fprintf(out, "layout.rows        = %d\n", c.Layout.Rows)
			fmt.Fprintf(out, "ui.theme           = %s\n", c.UI.Theme)
			fmt.Fprintf(out, "ui.default_project = %s\n", c.UI.DefaultProject)
			fmt.Fprintf(out, "log.level          = %s\n", c.Log.Level)
			fmt.Fprintf(out, "log.file           = %s\n", c.Log.File)
			return nil
		},
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.Path())
			return nil
		},
	}
	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
