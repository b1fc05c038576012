package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/decker502/tftui/internal/logger"
	"github.com/decker502/tftui/pkg/backend/ebitenui"
	"github.com/decker502/tftui/pkg/backend/tcellui"
)

const (
	backendEbiten = "ebiten"
	backendTcell  = "tcell"
)

func newRunCmd() *cobra.Command {
	var (
		flags   screenFlags
		backend string
		scale   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the screen in a window or a terminal",
		Example: `  tftui run
  tftui run --backend tcell --screen panel.toml
  tftui run --theme night.yaml --scale 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if backend != backendEbiten && backend != backendTcell {
				return fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendEbiten, backendTcell)
			}

			ctx := cmd.Context()
			l := logger.FromContext(ctx)

			s, err := flags.build(ctx)
			if err != nil {
				return err
			}
			defer s.Destroy()

			l.Info("starting", "screen", s.Name(), "backend", backend)

			if backend == backendTcell {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
				return tcellui.Run(ctx, s, tcellui.Options{Logger: l})
			}
			return ebitenui.Run(s, "tftui - "+s.Name(), scale, l)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&backend, "backend", "b", backendEbiten, "display backend: ebiten or tcell")
	cmd.Flags().IntVar(&scale, "scale", 2, "window scale factor (ebiten only)")

	return cmd
}
