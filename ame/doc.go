// Package ame parses the Atomic Mass Evaluation 2020 mass table
// (https://www-nds.iaea.org/amdc/).
//
// The table layout is documented in the preamble of the data file
// itself; this package reads data formatted like the mass.mas20 file.
// The rounded variant and earlier evaluations such as AME2016 use a
// different layout and are not supported.
//
// Records are read one at a time:
//
//	f, err := os.Open("mass.mas20")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	nuclides, err := ame.NewReader(f).ReadAll()
package ame
