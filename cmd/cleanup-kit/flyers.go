package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cleanup-kit/internal/flyer"
	"cleanup-kit/internal/runlog"
)

func newFlyersCmd(a *app) *cobra.Command {
	var (
		outDir string
		only   []string
		dpi    int
	)
	cmd := &cobra.Command{
		Use:   "flyers",
		Short: "Render the printable recruitment flyers (PNG + PDF)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc := a.cfg.Flyers
			if outDir != "" {
				fc.OutDir = outDir
			}
			if dpi != 0 {
				fc.Page.DPI = dpi
			}

			specs, err := flyer.Select(fc.Specs, only)
			if err != nil {
				return err
			}
			fonts, err := flyer.LoadFonts(fc.FontRegular, fc.FontBold)
			if err != nil {
				return err
			}
			defer fonts.Close()

			r, err := flyer.NewRenderer(fc.Page, fonts, fc.Copy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			wrote := color.New(color.FgGreen, color.Bold)
			g := &flyer.Generator{
				Renderer: r,
				OutDir:   fc.OutDir,
				Log:      a.log,
				OnWrite: func(res flyer.Result) {
					for _, p := range []string{res.PNG, res.PDF} {
						wrote.Fprint(out, "Wrote")
						fmt.Fprintln(out, " "+p)
					}
					a.runlog.Log(runlog.Record{
						Type:    runlog.TypeFlyer,
						Source:  res.Slug,
						Outputs: []string{res.PNG, res.PDF},
					})
				},
			}

			a.log.Info("rendering flyers", "count", len(specs), "out_dir", fc.OutDir, "dpi", fc.Page.DPI)
			res, err := g.Generate(cmd.Context(), specs)
			if err != nil {
				return err
			}
			a.log.Info("flyers done", "written", len(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides flyers.out_dir)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "render only these slugs (comma separated)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "raster resolution (overrides flyers.page.dpi)")
	return cmd
}
