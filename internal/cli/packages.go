package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlgen/pkg/discover"
	"github.com/matzehuels/pumlgen/pkg/errors"
)

// packagesCommand lists the package directories below the root.
func (c *CLI) packagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List candidate packages below the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := c.options("", 0)
			if err != nil {
				return err
			}
			return c.runPackages(opts.Root)
		},
	}
}

func (c *CLI) runPackages(root string) error {
	names, err := discover.Packages(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "read root %s", root)
	}
	if len(names) == 0 {
		printWarning("No packages with Python files below %s", root)
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		files, err := discover.Files(filepath.Join(root, name))
		if err != nil {
			c.Logger.Debug("skipping package", "package", name, "err", err)
			continue
		}
		rows = append(rows, []string{name, strconv.Itoa(len(files))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Package", "Files").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		})

	printDetail("Root: %s", root)
	fmt.Println(t.Render())
	printNewline()
	printNextStep("Generate diagrams", fmt.Sprintf("%s generate %s", appName, names[0]))
	return nil
}
