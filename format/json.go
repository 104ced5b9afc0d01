package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ame2020/ame"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(nuclides []ame.Nuclide) error {
	text, err := json.MarshalIndent(nuclides, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}
