package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/modler/internal/cli/ui"
	"github.com/conduit-lang/modler/internal/orm/schema"
)

// NewSchemaCommand creates the schema command
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file>",
		Short: "Validate and print a property schema file",
		Long: `Load a YAML or JSON file with a top-level properties map, check every
descriptor and print the resulting property table.`,
		Example: `  modler schema models/user.yml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, args[0])
		},
	}
}

func runSchema(cmd *cobra.Command, path string) error {
	s, err := schema.LoadFile(path)
	if err != nil {
		return err
	}
	if err := schema.Validate(s); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	nc := noColor(cmd)

	ui.Header(out, filepath.Base(path), nc)
	table := ui.NewTable(out, []string{"Name", "Type", "Required", "Guarded", "Relation", "Description"}, &ui.TableOptions{NoColor: nc})
	for _, p := range s.All() {
		table.AddRow(p.Name, p.Type, yesNo(p.Required), yesNo(p.Guarded), describeRelation(p.Relation), p.Description)
	}
	table.Render()

	fmt.Fprintln(out)
	ui.PrintSuccess(out, fmt.Sprintf("%d properties, schema is valid", s.Len()), nc)
	return nil
}

func describeRelation(rel *schema.Relation) string {
	if rel == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s", rel.Model, rel.Method)
	if rel.Local != "" {
		fmt.Fprintf(&b, "(%s)", rel.Local)
	}
	if rel.ReturnsValue() {
		b.WriteString(" -> value")
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
