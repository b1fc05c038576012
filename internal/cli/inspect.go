package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/decker502/tftui/pkg/widget"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleOn     = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleOff    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

func newInspectCmd() *cobra.Command {
	var flags screenFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the buttons of a screen layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.build(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Destroy()

			w, h := s.Size()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s  %dx%d  %d buttons", s.Name(), w, h, s.Len())))

			rows := make([][]string, 0, s.Len())
			states := make([]string, 0, s.Len())
			for _, name := range s.Names() {
				b, _ := s.Button(name)
				rows = append(rows, buttonRow(name, b))
				states = append(states, b.StatusText())
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleBorder).
				Headers("Name", "ID", "Kind", "Rect", "Label", "Label 2", "Status", "Font").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 6 && row >= 0 && row < len(states) {
						switch states[row] {
						case "ON":
							return styleOn
						case "OFF":
							return styleOff
						}
					}
					return lipgloss.NewStyle()
				})

			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// buttonRow 一个按钮的表格行
func buttonRow(name string, b *widget.Button) []string {
	r := b.Bounds()
	font := "small"
	if b.Fat() {
		font = "big"
	}
	status := b.StatusText()
	if status == "" {
		status = "-"
	}
	return []string{
		name,
		strconv.FormatUint(uint64(b.ID()), 10),
		b.Type().String(),
		fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2),
		b.Label().Text,
		b.Label2().Text,
		status,
		font,
	}
}
