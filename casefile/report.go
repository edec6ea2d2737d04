package casefile

import (
	"fmt"
	"io"

	"github.com/shaih/go-polyrecon/primitives/shamir"
	"github.com/ugorji/go/codec"
)

// Report is the outcome of processing one test case, as presented to a user
type Report struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`
	Name    string   `codec:"name"`
	// Secret is the decimal secret, empty on error
	Secret string `codec:"secret"`
	// Checked is true if redundant shares were validated
	Checked bool `codec:"checked"`
	// Invalid lists the 1-based indices of the shares off the curve
	Invalid []int  `codec:"invalid"`
	Err     string `codec:"error"`
}

// NewReport builds the report of the test case name from the results of shamir.Process.
// If err is not nil, rec and v are ignored.
func NewReport(name string, rec *shamir.Reconstruction, v *shamir.Validation, err error) *Report {
	r := &Report{Name: name}
	if err != nil {
		r.Err = err.Error()
		return r
	}
	r.Secret = rec.Secret.String()
	if v != nil && v.Checked {
		r.Checked = true
		r.Invalid = append([]int{}, v.Invalid...)
	}
	return r
}

// Failed returns true if the test case could not be processed
func (r *Report) Failed() bool {
	return r.Err != ""
}

// EncodeReport writes r to w
func EncodeReport(w io.Writer, r *Report, format Format) error {
	return codec.NewEncoder(w, handle(format)).Encode(r)
}

// DecodeReport reads a report written by EncodeReport
func DecodeReport(rd io.Reader, format Format) (*Report, error) {
	r := &Report{}
	err := codec.NewDecoder(rd, handle(format)).Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode report: %v", ErrMalformed, err)
	}
	return r, nil
}

// WriteText writes r in human readable form:
//
//	Test case <name> - Secret: <secret>
//	Wrong points: <indices or None>
//
// where the second line is only present when redundant shares were checked
func WriteText(w io.Writer, r *Report) error {
	if r.Failed() {
		_, err := fmt.Fprintf(w, "Test case %s - Error: %s\n", r.Name, r.Err)
		return err
	}
	_, err := fmt.Fprintf(w, "Test case %s - Secret: %s\n", r.Name, r.Secret)
	if err != nil || !r.Checked {
		return err
	}
	wrong := "None"
	if len(r.Invalid) > 0 {
		wrong = (&shamir.Validation{Checked: true, Invalid: r.Invalid}).String()
	}
	_, err = fmt.Fprintf(w, "Wrong points: %s\n", wrong)
	return err
}
