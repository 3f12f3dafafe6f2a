package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/benbenti/PhotoID/internal/config"
	"github.com/benbenti/PhotoID/internal/infra/photofs"
)

// NewScanCmd builds the subcommand that lists what a quiz would draw
// from: every identity found in the folders and its photo count.
func NewScanCmd(configPath *string) *cobra.Command {
	var (
		folders []string
		include []string
		exclude []string
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan photo folders and list the identities found",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(*configPath)
			if err != nil {
				return err
			}
			setupLogger(cfg.Log.Level)

			roots := config.Strings(folders, cfg.Photos.Folders)
			if len(roots) == 0 {
				return fmt.Errorf("no photo folders: pass --folders or set photos.folders in the config")
			}

			idx, err := photofs.Scan(roots, photofs.Options{
				Include:    config.Strings(include, cfg.Photos.Include),
				Exclude:    config.Strings(exclude, cfg.Photos.Exclude),
				Extensions: cfg.Photos.Extensions,
			})
			if err != nil {
				return err
			}
			warnSkipped(idx.Skipped)

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Identity", "Photos"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
			})
			total := 0
			for _, id := range idx.Identities() {
				photos, err := idx.Photos(id)
				if err != nil {
					return err
				}
				tw.AppendRow(table.Row{id, strconv.Itoa(len(photos))})
				total += len(photos)
				if list {
					for _, p := range photos {
						tw.AppendRow(table.Row{"", p})
					}
				}
			}
			tw.AppendFooter(table.Row{fmt.Sprintf("%d identities", idx.Len()), strconv.Itoa(total)})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&folders, "folders", nil, "photo folders to scan (repeatable)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only use photos whose path contains one of these terms")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "skip photos whose path contains one of these terms")
	cmd.Flags().BoolVar(&list, "list", false, "also list every photo path")
	return cmd
}
