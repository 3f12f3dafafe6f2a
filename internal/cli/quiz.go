package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/benbenti/PhotoID/internal/app"
	"github.com/benbenti/PhotoID/internal/config"
	"github.com/benbenti/PhotoID/internal/infra/photofs"
	"github.com/benbenti/PhotoID/internal/infra/scorefile"
	"github.com/benbenti/PhotoID/internal/render"
	"github.com/benbenti/PhotoID/internal/score"
	"github.com/benbenti/PhotoID/internal/tui"
)

// Default artifact names, kept from earlier versions of this tool so
// existing score files keep round-tripping.
const (
	defaultTableName  = "QuizzScore.csv"
	defaultFigureName = "QuizzResultsFig.png"
)

// NewQuizCmd builds the subcommand that runs a quiz session.
func NewQuizCmd(configPath *string) *cobra.Command {
	var (
		folders    []string
		include    []string
		exclude    []string
		questions  int
		previous   string
		saveTable  string
		saveFigure string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a photo identification quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(*configPath)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Log.Level)

			roots := config.Strings(folders, cfg.Photos.Folders)
			if len(roots) == 0 {
				return fmt.Errorf("no photo folders: pass --folders or set photos.folders in the config")
			}
			n := config.Questions(questions, cfg.Quiz.Questions, 20)

			idx, err := photofs.Scan(roots, photofs.Options{
				Include:    config.Strings(include, cfg.Photos.Include),
				Exclude:    config.Strings(exclude, cfg.Photos.Exclude),
				Extensions: cfg.Photos.Extensions,
			})
			if err != nil {
				return err
			}
			warnSkipped(idx.Skipped)

			table, err := loadOrCreateTable(config.String(previous, cfg.Results.Previous), idx)
			if err != nil {
				return err
			}

			session, err := app.NewSession(idx, table, n, app.WithLogger(logger))
			if err != nil {
				return err
			}

			if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
				err = session.Run(tui.NewLinePresenter(cmd.InOrStdin(), cmd.OutOrStdout()))
			} else {
				err = tui.RunQuiz(session)
			}
			if err != nil {
				return err
			}

			if v := render.NormalizedView(table); len(v.Rows) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), render.TerminalView(v))
			}

			return render.Export(table, render.ExportOptions{
				FigurePath: config.String(saveFigure, cfg.Results.SaveFigure),
				TablePath:  config.String(saveTable, cfg.Results.SaveTable),
				FontPath:   cfg.Render.Font,
			})
		},
	}

	cmd.Flags().StringSliceVar(&folders, "folders", nil, "photo folders to scan (repeatable)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only use photos whose path contains one of these terms")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "skip photos whose path contains one of these terms")
	cmd.Flags().IntVarP(&questions, "questions", "n", 0, "number of questions (default 20)")
	cmd.Flags().StringVar(&previous, "previous", "", "previous score file (.csv) to merge into")
	cmd.Flags().StringVar(&saveTable, "save-table", "", "where to save the score table")
	cmd.Flags().StringVar(&saveFigure, "save-figure", "", "where to save the results figure")
	cmd.Flags().BoolVar(&plain, "plain", false, "line-mode prompts instead of the full-screen UI")
	cmd.Flags().Lookup("save-table").NoOptDefVal = defaultTableName
	cmd.Flags().Lookup("save-figure").NoOptDefVal = defaultFigureName
	return cmd
}

// loadOrCreateTable builds the score table for a session: a fresh one
// over the scanned identities, or the previous file grown to cover
// them. A previous file that fails to load aborts the run; the quiz
// never starts on a half-merged table.
func loadOrCreateTable(previous string, idx *photofs.Index) (*score.Table, error) {
	if previous == "" {
		return score.New(idx.Identities()), nil
	}
	table, err := scorefile.Load(previous)
	if err != nil {
		return nil, err
	}
	table.Merge(idx.Identities())
	return table, nil
}

func warnSkipped(paths []string) {
	if len(paths) == 0 {
		return
	}
	warn := color.New(color.FgYellow)
	warn.Fprintf(os.Stderr, "skipped %d file(s) without an identity in the filename:\n", len(paths))
	for _, p := range paths {
		warn.Fprintf(os.Stderr, "  %s\n", p)
	}
}
