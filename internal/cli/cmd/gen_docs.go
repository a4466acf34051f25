package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/paneset/internal/infrastructure/config"
)

const dirPerm = 0o755

// docFormat generates the command reference in one output format.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "PANESET",
				Section: "1",
				Source:  "paneset " + buildInfo.Version,
				Manual:  "Paneset Manual",
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "docs", nil },
		generate:   doc.GenMarkdownTree,
	},
	"rest": {
		ext:        ".rst",
		defaultDir: func() (string, error) { return "docs", nil },
		generate:   doc.GenReSTTree,
	},
}

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate the command reference",
	Long: `Generate the paneset command reference from the command definitions.

Formats:
  man       manual pages, installed to $XDG_DATA_HOME/man/man1 by default
  markdown  one .md file per command, written to ./docs by default
  rest      one .rst file per command, written to ./docs by default

Run 'mandb' after installing man pages if 'man paneset' does not find them.`,
	Example: `  paneset gen-docs
  paneset gen-docs -f markdown -o ./site/cli`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory (defaults per format)")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: "+strings.Join(docFormatNames(), ", "))
}

func docFormatNames() []string {
	names := make([]string, 0, len(docFormats))
	for name := range docFormats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: %s)", genDocsFormat, strings.Join(docFormatNames(), ", "))
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve %s output directory: %w", genDocsFormat, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true
	if err := format.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+format.ext))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d %s files to %s\n", len(files), genDocsFormat, dir)
	for _, f := range files {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(f))
	}
	return nil
}
