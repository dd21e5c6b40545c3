package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/starwake/render"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var (
		width, height int
		tps           int
		flyIn         bool
		showFPS       bool
		shotDir       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate the field",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			field, err := opts.newField()
			if err != nil {
				return err
			}
			scene, err := render.NewScene(field, render.SceneOptions{
				Logger:  logger,
				TPS:     tps,
				Debug:   opts.verbose,
				ShowFPS: showFPS,
				FlyIn:   flyIn,

				ScreenshotDir: shotDir,
			})
			if err != nil {
				return err
			}
			logger.Info("Starting", "flames", field.Flames().Len(), "stars", field.Stars().Len(), "backdrop", field.Backdrop().Len())
			return render.Run(scene, render.RunConfig{
				Title:  "starwake",
				Width:  width,
				Height: height,
				TPS:    tps,
			})
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "window width")
	cmd.Flags().IntVar(&height, "height", 720, "window height")
	cmd.Flags().IntVar(&tps, "tps", 60, "updates per second")
	cmd.Flags().BoolVar(&flyIn, "fly-in", true, "start with a camera fly-in")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	cmd.Flags().StringVar(&shotDir, "screenshot-dir", "screenshots", "directory for screenshots taken with P")

	return cmd
}
