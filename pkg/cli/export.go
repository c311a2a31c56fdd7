package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qazaqnlp/qural/pkg/export"
	"github.com/qazaqnlp/qural/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <category>",
		Short: "Write a category's delivery JSON file",
		Long:  "Exports every saved record of one category into <category>.json, the same file the web UI serves for download.",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", ".", "Output directory")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	category := types.Category(args[0])
	if !category.Valid() {
		exitErr("export", fmt.Errorf("unknown category %q", args[0]))
	}

	store, err := openStore()
	if err != nil {
		exitErr("open database", err)
	}
	defer store.Close()

	exporter := export.NewExporter(store, newLogger())
	result, err := exporter.Export(cmd.Context(), category)
	if err != nil {
		exitErr("export", err)
	}

	for _, skip := range result.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", skip.ID, skip.Err)
	}

	outDir, _ := cmd.Flags().GetString("out")
	path := filepath.Join(outDir, result.FileName)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		exitErr("write file", err)
	}

	fmt.Printf("%s: %d record(s)\n", path, result.Count)
}
