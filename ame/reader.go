package ame

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// readState tracks the structural zone of the file the reader is in.
// Zones only ever advance.
type readState int

const (
	stateStart    readState = iota // before the first page feed
	statePreamble                  // format documentation block
	stateHeaders                   // column header block
	stateBody                      // data lines
)

// Reader reads nuclide records from an AME2020 mass table.
//
// The underlying source is consumed strictly forward, one line at a
// time, and belongs to the Reader for as long as it is in use. A Reader
// is not restartable: parsing the same data again requires a new Reader
// over a fresh source.
type Reader struct {
	scanner *bufio.Scanner
	state   readState
}

// NewReader creates a Reader that consumes mass-table text from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		state:   stateStart,
	}
}

// Read returns the next nuclide record. It returns io.EOF once the
// source is exhausted; a source that ends before the first data line is
// reached yields no records and no error.
//
// Read and parse failures are reported per line, one error per failed
// line, and do not stop the sequence: the next call moves on to the
// next line. There is no resynchronization after a failure, so records
// following a structurally corrupt line are produced on a best-effort
// basis and their validity is not guaranteed.
func (r *Reader) Read() (Nuclide, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if !utf8.ValidString(line) {
			return Nuclide{}, &IOError{Err: ErrInvalidData}
		}
		switch r.state {
		case stateStart:
			// Discard everything up to the first page feed.
			if strings.HasPrefix(line, "1") {
				r.state = statePreamble
			}
		case statePreamble:
			if strings.HasPrefix(line, "1") {
				r.state = stateHeaders
			}
		case stateHeaders:
			// The first data line carries the '0' carriage control
			// character and is itself the first record.
			if strings.HasPrefix(line, "0") {
				r.state = stateBody
				return parseNuclide(line)
			}
		case stateBody:
			return parseNuclide(line)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return Nuclide{}, &IOError{Err: err}
	}
	return Nuclide{}, io.EOF
}

// ReadAll reads records until the source is exhausted. It stops at the
// first failed line and returns that line's error together with the
// records read so far.
func (r *Reader) ReadAll() ([]Nuclide, error) {
	var nuclides []Nuclide
	for {
		nuc, err := r.Read()
		if err == io.EOF {
			return nuclides, nil
		}
		if err != nil {
			return nuclides, err
		}
		nuclides = append(nuclides, nuc)
	}
}
