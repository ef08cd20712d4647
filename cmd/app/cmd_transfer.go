package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/storyboard/internal/database"
	"github.com/akyairhashvil/storyboard/internal/report"
	"github.com/akyairhashvil/storyboard/internal/util"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		passphrase string
		name       string
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a project file as a new project",
		Long: `Import a JSON project file written by dump. Encrypted files need a
passphrase; it is prompted for when stdin is a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, args[0], passphrase, name)
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase for encrypted files")
	cmd.Flags().StringVar(&name, "name", "", "project name (default: name stored in the file)")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, path, passphrase, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return err
	}
	opts := database.ImportOptions{Passphrase: passphrase, Name: name, BaseDir: dir}
	project, err := a.db.ImportProject(ctx, data, opts)
	if errors.Is(err, database.ErrEncryptedPayload) && stdinIsTerminal() {
		if opts.Passphrase, err = promptForKey("Enter passphrase: "); err != nil {
			return err
		}
		project, err = a.db.ImportProject(ctx, data, opts)
	}
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	panels, err := a.db.GetPanels(ctx, project.ID)
	if err != nil {
		return err
	}
	util.Logger().Info("project imported", zap.String("file", path), zap.String("project", project.Slug), zap.Int("panels", len(panels)))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d panels into %s (%s)\n", len(panels), project.Name, project.Slug)
	return nil
}

func newDumpCmd(a *app) *cobra.Command {
	var (
		out        string
		encrypt    bool
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write a project file",
		Long: `Write the project as a JSON project file. With --encrypt the file is
sealed with a passphrase (AES-256-GCM, argon2id key).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd, out, encrypt, passphrase)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt the project file")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase used with --encrypt")
	return cmd
}

func readNewPassphrase() (string, error) {
	if !stdinIsTerminal() {
		return "", errors.New("--passphrase is required when stdin is not a terminal")
	}
	pass, err := promptForKey("Set passphrase: ")
	if err != nil {
		return "", err
	}
	again, err := promptForKey("Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if pass != again {
		return "", errors.New("passphrases do not match")
	}
	return pass, nil
}

func (a *app) runDump(cmd *cobra.Command, out string, encrypt bool, passphrase string) error {
	ctx := cmd.Context()
	project, err := a.resolveProject(ctx, false)
	if err != nil {
		return err
	}
	if encrypt {
		if passphrase == "" {
			if passphrase, err = readNewPassphrase(); err != nil {
				return err
			}
		}
		if err := util.ValidatePassphrase(passphrase); err != nil {
			return err
		}
	}
	data, err := a.db.ExportProject(ctx, project.ID, database.ExportOptions{EncryptOutput: encrypt, Passphrase: passphrase})
	if err != nil {
		return err
	}
	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := report.WriteFile(out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", project.Name, out)
	return nil
}
