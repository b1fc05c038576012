package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decker502/tftui/pkg/display"
)

func newTraceCmd() *cobra.Command {
	var (
		flags   screenFlags
		press   string
		samples int
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the drawing calls the screen sends to the panel",
		Long: `Trace renders the screen into an in-memory recorder and prints every call in order.
With --press it also simulates a press-and-release on the named button.`,
		Example: `  tftui trace
  tftui trace --press pump --samples 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 0 {
				return fmt.Errorf("--samples cannot be negative, got %d", samples)
			}

			s, err := flags.build(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Destroy()

			out := cmd.OutOrStdout()
			rec := display.NewRecorder()

			if err := s.Draw(rec); err != nil {
				return err
			}
			fmt.Fprintf(out, "# draw %s (%d calls)\n", s.Name(), rec.Len())
			fmt.Fprint(out, rec.String())

			if press == "" {
				return nil
			}

			b, ok := s.Button(press)
			if !ok {
				return fmt.Errorf("no button named %q (have %v)", press, s.Names())
			}

			rec.Reset()
			touch := display.NewScriptedTouch(samples)
			if err := s.Press(rec, touch, press); err != nil {
				return err
			}

			fmt.Fprintf(out, "# press %s (%d samples, %d calls)\n", press, touch.Reads, rec.Len())
			fmt.Fprint(out, rec.String())
			if b.IsOnOff() {
				fmt.Fprintf(out, "# %s is now %s\n", press, b.StatusText())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&press, "press", "p", "", "simulate a press-and-release on this button")
	cmd.Flags().IntVar(&samples, "samples", 3, "touch samples reported while the simulated press is held")

	return cmd
}
