package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/pipeline"
)

// classesCommand creates the classes command for inspecting one package.
func (c *CLI) classesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [package]",
		Short: "List the classes extracted from a package",
		Long: `List the classes extracted from a package without writing anything.

Shows the same records the diagram is drawn from: module, class, bases,
methods and the source line of each class.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := c.options("", 0)
			if err != nil {
				return err
			}
			return c.runClasses(cmd.Context(), opts, args[0])
		},
	}
}

func (c *CLI) runClasses(ctx context.Context, opts pipeline.Options, name string) error {
	pkg, err := c.newRunner().Model(ctx, opts, name)
	if err != nil {
		return err
	}

	if len(pkg.Classes) == 0 {
		printWarning("No classes found in %s", name)
		return nil
	}

	fmt.Println(StyleTitle.Render(name))
	fmt.Println(classTable(pkg).Render())

	s := pkg.Stats()
	printStats(s.Classes, s.Modules, s.Edges, s.Unresolved)
	return nil
}

// classTable lays out one row per class in diagram order.
func classTable(pkg *model.Package) *table.Table {
	rows := make([][]string, 0, len(pkg.Classes))
	for _, cl := range pkg.Classes {
		rows = append(rows, []string{
			cl.Module,
			cl.Name,
			orDash(strings.Join(cl.Bases, ", ")),
			strconv.Itoa(len(cl.Methods)),
			fmt.Sprintf("%s:%d", cl.Path, cl.Line),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Module", "Class", "Bases", "Methods", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1:
				return StyleHighlight
			case col == 4:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
