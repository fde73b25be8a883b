package commands

import (
	"encoding/json"
	"fmt"

	"spiralgen/internal/inductance"

	"github.com/spf13/cobra"
)

func newInductanceCmd(coil *coilFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "inductance",
		Aliases: []string{"l"},
		Short:   "Estimate the self-inductance of a coil",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := coil.params()
			if err != nil {
				return err
			}
			r := inductance.FromParams(p)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}

			heading.Fprintln(out, r.String())
			fmt.Fprintf(out, "Shape:      %s (K1=%.2f, K2=%.2f)\n", r.Shape, r.Coefficients.K1, r.Coefficients.K2)
			fmt.Fprintf(out, "Turns:      %g\n", r.Turns)
			fmt.Fprintf(out, "d_in:       %.4f mm\n", r.Dimensions.InnerDiameter)
			fmt.Fprintf(out, "d_out:      %.4f mm\n", r.Dimensions.OuterDiameter)
			fmt.Fprintf(out, "d_avg:      %.4f mm\n", r.Dimensions.AverageDiameter)
			fmt.Fprintf(out, "Fill ratio: %.4f\n", r.Dimensions.FillRatio)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the estimate as JSON")
	return cmd
}
