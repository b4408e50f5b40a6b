package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	ribio "github.com/matzehuels/ribpatch/pkg/io"
	"github.com/matzehuels/ribpatch/pkg/mesh"
)

// inspectCommand creates the inspect command, which summarizes an existing
// mesh file without converting anything.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate a .patch or .json mesh and print its statistics",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := importMesh(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded mesh", "patches", len(m.Patches), "points", len(m.Points))
			prog.done("validated mesh", "file", args[0])

			return printMeshStats(cmd.OutOrStdout(), args[0], m)
		},
	}
}

// importMesh decodes path based on its extension: .json for the JSON
// encoding, anything else for the .patch text format.
func importMesh(path string) (*mesh.Mesh, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ribio.ImportJSON(path)
	}
	return ribio.ImportPatch(path)
}

// meshRows returns the label/value rows describing m.
func meshRows(m *mesh.Mesh) [][]string {
	refs := m.References()
	shared := "n/a"
	if len(m.Points) > 0 {
		shared = fmt.Sprintf("%.2f refs/point", float64(refs)/float64(len(m.Points)))
	}

	rows := [][]string{
		{"Patches", fmt.Sprint(len(m.Patches))},
		{"Unique points", fmt.Sprint(len(m.Points))},
		{"References", fmt.Sprint(refs)},
		{"Sharing", shared},
	}

	if lo, hi, ok := m.Bounds(); ok {
		rows = append(rows,
			[]string{"Min", formatPoint(lo.X, lo.Y, lo.Z)},
			[]string{"Max", formatPoint(hi.X, hi.Y, hi.Z)},
		)
	}
	return rows
}

func formatPoint(x, y, z float64) string {
	return ribio.FormatCoord(x) + ", " + ribio.FormatCoord(y) + ", " + ribio.FormatCoord(z)
}

// printMeshStats renders the statistics of m as a table.
func printMeshStats(w io.Writer, path string, m *mesh.Mesh) error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", filepath.Base(path)).
		Rows(meshRows(m)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleDim
			default:
				return StyleNumber
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
