package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/starwake"
)

func newInspectCmd(opts *globalOptions) *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the generated members of each ensemble",
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := opts.newField()
			if err != nil {
				return err
			}
			ensembles, err := selectEnsembles(field, kind)
			if err != nil {
				return err
			}
			for _, e := range ensembles {
				writeEnsemble(cmd.OutOrStdout(), e, limit)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "all", "ensemble to show: flame, star, backdrop or all")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "members per ensemble; 0 shows all")

	return cmd
}

func selectEnsembles(field *starwake.Field, kind string) ([]*starwake.Ensemble, error) {
	if kind == "all" || kind == "" {
		return field.Ensembles(), nil
	}
	for _, e := range field.Ensembles() {
		if e.Kind().String() == kind {
			return []*starwake.Ensemble{e}, nil
		}
	}
	return nil, fmt.Errorf("unknown kind %q (want flame, star, backdrop or all)", kind)
}

func writeEnsemble(w io.Writer, e *starwake.Ensemble, limit int) {
	n := e.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	look := e.Look()
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(e.Kind().String()),
		styleDim.Render(fmt.Sprintf("%d members, shader %s, texture %s", e.Len(), look.Shader, look.Texture)))

	rows := make([][]string, 0, n)
	for i := range n {
		m := e.At(i)
		p := m.Position()
		rows = append(rows, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%.3f", p.X()),
			fmt.Sprintf("%.3f", p.Y()),
			fmt.Sprintf("%.3f", p.Z()),
			fmt.Sprintf("%.4f", m.BaseSize),
			fmt.Sprintf("%.2f", m.Phase),
			fmt.Sprintf("%.2f %.2f %.2f", m.Color.R, m.Color.G, m.Color.B),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("#", "x", "y", "z", "size", "phase", "color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return styleDim
			}
			return styleValue
		})
	fmt.Fprintln(w, t.Render())
	if n < e.Len() {
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  ... %d more", e.Len()-n)))
	}
}
