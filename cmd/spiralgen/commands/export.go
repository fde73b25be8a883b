package commands

import (
	"errors"
	"fmt"
	"log"

	"spiralgen/internal/export"
	"spiralgen/internal/via"

	"github.com/spf13/cobra"
)

func newExportCmd(coil *coilFlags) *cobra.Command {
	defaults := export.DefaultOptions()
	var (
		output    string
		scale     float64
		margin    float64
		centerVia bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a coil preview as SVG, DXF, PNG or TIFF",
		Long: `export writes the coil to a file whose extension selects the format:
.svg and .png/.tif previews show copper and via on solder mask, .dxf holds
the centerline as line entities for mechanical import.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("output file must be specified with -o")
			}
			p, err := coil.params()
			if err != nil {
				return err
			}
			d, err := export.NewDrawing(p, centerVia, via.DefaultParams())
			if err != nil {
				return err
			}

			opts := defaults
			opts.PixelsPerMM = scale
			opts.Margin = margin
			if err := export.WriteFile(output, d, opts); err != nil {
				return fmt.Errorf("export %s: %w", output, err)
			}
			log.Printf("Wrote %s (%d points)", output, len(d.Path))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", output)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "Output file (.svg, .dxf, .png, .tif)")
	f.Float64Var(&scale, "scale", defaults.PixelsPerMM, "Preview resolution (pixels per mm)")
	f.Float64Var(&margin, "margin", defaults.Margin, "Blank border around the coil (mm)")
	f.BoolVar(&centerVia, "via", false, "Draw the center via")
	return cmd
}
