package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framefold/responsive/cssgen"
)

var exportCmd = &cobra.Command{
	Use:   "export <document.yaml>",
	Short: "Emit CSS media queries for a document's responsive overrides",
	Long: "Export reads a YAML document of elements and per-breakpoint overrides, prunes\n" +
		"entries for breakpoints no longer in the registry, and prints the @media blocks.\n" +
		"Base styles are not part of the document; the editor emits those separately.",
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "write CSS to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := cssgen.LoadDocument(data)
	if err != nil {
		return err
	}

	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()

	breakpoints := sess.Breakpoints()
	doc.Prune(breakpoints)
	out := cssgen.Generate(breakpoints, doc.Elements)

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("write css: %w", err)
		}
		return nil
	}
	fmt.Print(out)
	return nil
}
