package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/checklist/internal/listflags"
	"github.com/amonks/checklist/internal/ui"
	"github.com/amonks/checklist/todo"
	"github.com/spf13/cobra"
)

// export
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every todo to a JSON backup file",
	Long: `Write every todo to a JSON backup file.

The file is named todos-backup-YYYY-MM-DD.json in the current directory
unless --output is given. Use --stdout to print the document instead.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportOutput string
	exportStdout bool
	exportForce  bool
)

// import
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add todos from a JSON backup file",
	Long: `Add todos from a JSON backup file ("-" reads stdin).

Records that are missing an id, text, completed flag or creation time are
skipped, as are records whose ID is already in the list. Existing todos
are never changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importJSON bool

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default todos-backup-<date>.json)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the document to stdout")
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false, "Overwrite an existing output file")
	exportCmd.MarkFlagsMutuallyExclusive("output", "stdout")

	listflags.AddJSONFlag(importCmd, &importJSON)
}

func runExport(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		if exportStdout {
			_, err := session.store.ExportTo(cmd.OutOrStdout())
			return err
		}

		path := exportOutput
		if path == "" {
			path = todo.ExportFilename(time.Now())
		}

		var buf bytes.Buffer
		count, err := session.store.ExportTo(&buf)
		if err != nil {
			return err
		}
		if err := writeExportFile(path, buf.Bytes(), exportForce); err != nil {
			return err
		}
		session.logger.Info("exported todos", "path", path, "count", count)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d todo(s) to %s\n", count, path)
		return nil
	})
}

func writeExportFile(path string, data []byte, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("export file %s already exists; pass --force to overwrite", path)
		}
		return fmt.Errorf("create export file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		var result todo.ImportResult
		if args[0] == "-" {
			result = session.store.ImportFrom(cmd.InOrStdin())
		} else {
			file, err := os.Open(args[0])
			if err != nil {
				session.logger.Error("open import file", "path", args[0], "err", err)
				result = todo.ImportResult{Message: todo.ImportMessageReadError}
			} else {
				result = session.store.ImportFrom(file)
				file.Close()
			}
		}

		if importJSON {
			if err := encodeJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else if result.Success {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(result.Message))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Error(result.Message))
		}

		if !result.Success {
			return exitError{code: 1}
		}
		return nil
	})
}
