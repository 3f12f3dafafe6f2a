package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benbenti/PhotoID/internal/config"
	"github.com/benbenti/PhotoID/internal/infra/scorefile"
	"github.com/benbenti/PhotoID/internal/render"
)

// NewRenderCmd builds the subcommand that re-renders a saved score
// file without running a quiz.
func NewRenderCmd(configPath *string) *cobra.Command {
	var (
		saveFigure string
		fontPath   string
	)

	cmd := &cobra.Command{
		Use:   "render <score.csv>",
		Short: "Render a saved score table as a terminal view and optionally a figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(*configPath)
			if err != nil {
				return err
			}
			setupLogger(cfg.Log.Level)

			table, err := scorefile.Load(args[0])
			if err != nil {
				return err
			}

			v := render.NormalizedView(table)
			if len(v.Rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no answered questions recorded in this file")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.TerminalView(v))

			if fig := config.String(saveFigure, ""); fig != "" {
				if err := render.SaveHeatmap(v, fig, render.HeatmapOptions{
					FontPath: config.String(fontPath, cfg.Render.Font),
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "figure saved to %s\n", fig)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&saveFigure, "save-figure", "", "where to save the results figure")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font for figure labels")
	cmd.Flags().Lookup("save-figure").NoOptDefVal = defaultFigureName
	return cmd
}
