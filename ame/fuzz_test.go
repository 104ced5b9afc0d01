package ame

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"reflect"
	"testing"
	"unicode/utf8"
)

func FuzzReader(f *testing.F) {
	seeds := [][]byte{
		nil,
		[]byte("1\n1\n" + neutronLine + "\n"),
		[]byte("junk\n1\npreamble\n1\nheaders\n" + neutronLine + "\n" + hydrogenLine + "\n"),
		[]byte("1\n1\n" + sodiumLine + "\n"),
		[]byte("1\n1\n0 short\n"),
		{0xff, 0xfe, '\n'},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(bytes.NewReader(data))
		// A source fault repeats on every call, so bound the drain
		// instead of waiting for io.EOF.
		for i := 0; i < 1<<16; i++ {
			if _, err := r.Read(); err == io.EOF {
				break
			}
		}
	})
}

func FuzzNuclideDecode(f *testing.F) {
	neutron, err := parseNuclide(neutronLine)
	if err != nil {
		f.Fatalf("parseNuclide() error = %v", err)
	}
	encoded, err := json.Marshal([]Nuclide{neutron})
	if err != nil {
		f.Fatalf("Marshal() error = %v", err)
	}

	f.Add(encoded)
	f.Add([]byte("{}"))
	f.Add([]byte("[]"))
	f.Add([]byte(`{"n":1,"z":0,"element":"n"}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var nuclides []Nuclide
		_ = json.Unmarshal(data, &nuclides)

		var nuc Nuclide
		_ = json.Unmarshal(data, &nuc)
	})
}

func FuzzNuclideRoundTrip(f *testing.F) {
	f.Add(uint32(1), uint32(0), "n", 8071.31806, 0.00044, false, false, 782.347, 1.00866491590)
	f.Add(uint32(30), uint32(11), "Na", 59364.0, 400.0, true, true, 0.0, 41.063733)

	f.Fuzz(func(t *testing.T, n, z uint32, element string,
		mean, uncertainty float64, estimated, betaAbsent bool,
		betaMean, atomicMass float64) {
		// JSON cannot represent non-finite floats, and strings with
		// broken encoding do not survive encoding/json unchanged.
		for _, v := range []float64{mean, uncertainty, betaMean, atomicMass} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Skip()
			}
		}
		if !utf8.ValidString(element) {
			t.Skip()
		}
		for len(element) > 3 {
			_, size := utf8.DecodeLastRuneInString(element)
			element = element[:len(element)-size]
		}

		nuc := Nuclide{
			N:                       n,
			Z:                       z,
			Element:                 element,
			MassExcess:              Value{Mean: mean, Uncertainty: uncertainty, IsEstimated: estimated},
			BindingEnergyPerNucleon: Value{Mean: mean / 2, Uncertainty: uncertainty},
			AtomicMass:              Value{Mean: atomicMass, Uncertainty: uncertainty, IsEstimated: estimated},
		}
		if !betaAbsent {
			nuc.BetaDecayEnergy = &Value{Mean: betaMean, Uncertainty: uncertainty}
		}

		out, err := json.Marshal(nuc)
		if err != nil {
			t.Fatalf("Marshal(%+v) error = %v", nuc, err)
		}
		var back Nuclide
		if err := json.Unmarshal(out, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", out, err)
		}
		if !reflect.DeepEqual(nuc, back) {
			t.Fatalf("round trip = %+v, want %+v", back, nuc)
		}
	})
}
