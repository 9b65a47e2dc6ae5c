package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/uh6654/plugdata/internal/docgen"
)

var buildDocsDir string
var buildOutPath string
var buildWriteXML bool
var buildXMLPath string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Parse the documentation tree and write the binary file",
	Long: `Walk the documentation directory, parse every markdown file found in
its subdirectories, and write the combined documentation tree as a
single ValueTree binary file. Pass --xml to also write the XML form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := docgen.Run(docgen.Config{
			DocsDir:  buildDocsDir,
			BinPath:  buildOutPath,
			WriteXML: buildWriteXML,
			XMLPath:  buildXMLPath,
			Output:   cmd.OutOrStdout(),
		})
		return err
	},
}

func init() {
	// Flag defaults with env var fallback; a local .env can provide them
	_ = godotenv.Load()

	defaultDocs := "./Documentation"
	if envDocs := os.Getenv("PDDOCS_DOCS"); envDocs != "" {
		defaultDocs = envDocs
	}
	defaultOut := "Documentation.bin"
	if envOut := os.Getenv("PDDOCS_OUT"); envOut != "" {
		defaultOut = envOut
	}

	buildCmd.Flags().StringVar(&buildDocsDir, "docs", defaultDocs, "Directory containing the markdown documentation")
	buildCmd.Flags().StringVarP(&buildOutPath, "out", "o", defaultOut, "Output path for the binary tree")
	buildCmd.Flags().BoolVar(&buildWriteXML, "xml", false, "Also write the documentation tree as XML")
	buildCmd.Flags().StringVar(&buildXMLPath, "xml-out", "Documentation/Documentation.xml", "Output path for the XML tree (with --xml)")

	rootCmd.AddCommand(buildCmd)
}
