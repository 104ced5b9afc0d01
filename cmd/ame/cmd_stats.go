package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize a mass table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nuclides, err := readMassTable(args[0])
			if err != nil {
				return err
			}
			if len(nuclides) == 0 {
				fmt.Println("no nuclides")
				return nil
			}

			lightest, heaviest := nuclides[0], nuclides[0]
			estimated := 0
			for _, nuc := range nuclides {
				if nuc.AtomicMass.Less(lightest.AtomicMass) {
					lightest = nuc
				}
				if heaviest.AtomicMass.Less(nuc.AtomicMass) {
					heaviest = nuc
				}
				if nuc.MassExcess.IsEstimated {
					estimated++
				}
			}

			fmt.Printf("nuclides:              %d\n", len(nuclides))
			fmt.Printf("estimated mass excess: %d\n", estimated)
			fmt.Printf("lightest:              %s (Z=%d, N=%d) %.9f u\n",
				lightest.Element, lightest.Z, lightest.N, lightest.AtomicMass.Mean)
			fmt.Printf("heaviest:              %s (Z=%d, N=%d) %.9f u\n",
				heaviest.Element, heaviest.Z, heaviest.N, heaviest.AtomicMass.Mean)
			return nil
		},
	}
}
