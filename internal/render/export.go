package render

import (
	"github.com/benbenti/PhotoID/internal/infra/scorefile"
	"github.com/benbenti/PhotoID/internal/score"
)

// ExportOptions names the artifacts to write. Empty paths are skipped;
// requesting neither artifact makes Export a no-op.
type ExportOptions struct {
	FigurePath string
	TablePath  string
	FontPath   string
}

// Export writes the heatmap figure and/or the score file. Both writes
// overwrite existing files, so re-running an export is harmless.
func Export(t *score.Table, opts ExportOptions) error {
	if opts.FigurePath != "" {
		v := NormalizedView(t)
		if err := SaveHeatmap(v, opts.FigurePath, HeatmapOptions{FontPath: opts.FontPath}); err != nil {
			return err
		}
	}
	if opts.TablePath != "" {
		if err := scorefile.Save(opts.TablePath, t); err != nil {
			return err
		}
	}
	return nil
}
