package format

import "github.com/dhamidi/ame2020/ame"

// Encoder writes a collection of nuclides to an output stream.
type Encoder interface {
	Encode(nuclides []ame.Nuclide) error
}
