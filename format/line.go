package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ame2020/ame"
)

// LineEncoder writes one tab-separated line per nuclide, for use with
// grep and awk. Estimated values carry a trailing '#'.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(nuclides []ame.Nuclide) error {
	var sb strings.Builder
	for _, nuc := range nuclides {
		fmt.Fprintf(&sb, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			nuc.Element, nuc.Z, nuc.N,
			formatValue(nuc.MassExcess),
			formatValue(nuc.BindingEnergyPerNucleon),
			formatBeta(nuc.BetaDecayEnergy),
			formatValue(nuc.AtomicMass),
		)
	}
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func formatValue(v ame.Value) string {
	s := fmt.Sprintf("%g(%g)", v.Mean, v.Uncertainty)
	if v.IsEstimated {
		s += "#"
	}
	return s
}

func formatBeta(v *ame.Value) string {
	if v == nil {
		return "*"
	}
	return formatValue(*v)
}
