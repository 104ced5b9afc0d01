package ame

// Value is a measured or estimated physical quantity with its
// one-standard-deviation uncertainty.
//
// IsEstimated is set when the source marked the mean with '#', meaning
// the number comes from trends in systematics rather than from
// experimental data.
type Value struct {
	Mean        float64 `json:"mean"`
	Uncertainty float64 `json:"uncertainty"`
	IsEstimated bool    `json:"is_estimated,omitempty"`
}

// Less reports whether v's mean is smaller than o's. Only the means are
// compared; the ordering is partial, so if either mean is NaN, Less is
// false both ways.
func (v Value) Less(o Value) bool {
	return v.Mean < o.Mean
}

// Nuclide is one row of the mass table.
type Nuclide struct {
	// N is the neutron number.
	N uint32 `json:"n"`
	// Z is the proton number.
	Z uint32 `json:"z"`
	// Element is the chemical symbol of the element. The symbol column
	// is three bytes wide, so the string never exceeds three bytes.
	Element string `json:"element"`
	// MassExcess is the difference between the atomic mass in atomic
	// mass units and the mass number N+Z, in keV.
	MassExcess Value `json:"mass_excess"`
	// BindingEnergyPerNucleon in keV.
	BindingEnergyPerNucleon Value `json:"binding_energy_per_nucleon"`
	// BetaDecayEnergy in keV. Nil where the table marks the column as
	// not applicable.
	BetaDecayEnergy *Value `json:"beta_decay_energy"`
	// AtomicMass in atomic mass units.
	AtomicMass Value `json:"atomic_mass"`
}
