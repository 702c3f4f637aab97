package emit

import (
	"encoding/json"
	"io"

	apperrors "hist2json/pkg/errors"
	"hist2json/pkg/types"
)

// ArrayEmitter writes records as a single well-formed JSON array (§4.7
// "array mode"): bracketed with "[" and "]", comma-separated, no trailing
// comma.
type ArrayEmitter struct {
	w     io.Writer
	wrote bool
}

// NewArray opens array mode on w, immediately writing the leading bracket.
func NewArray(w io.Writer) (*ArrayEmitter, error) {
	if _, err := io.WriteString(w, "["); err != nil {
		return nil, apperrors.EmitterError("open", "cannot write array opening bracket").Wrap(err)
	}
	return &ArrayEmitter{w: w}, nil
}

// Emit writes rec as the next array element.
func (a *ArrayEmitter) Emit(rec *types.Record) error {
	if a.wrote {
		if _, err := io.WriteString(a.w, ","); err != nil {
			return apperrors.EmitterError("write", "cannot write array separator").Wrap(err)
		}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return apperrors.EmitterError("write", "cannot marshal record").Wrap(err)
	}
	if _, err := a.w.Write(b); err != nil {
		return apperrors.EmitterError("write", "cannot write record").Wrap(err)
	}
	a.wrote = true
	return nil
}

// Finish writes the closing bracket. The run summary itself is not part of
// the JSON array; it is reported separately by the caller (§4.7).
func (a *ArrayEmitter) Finish(summary *types.RunSummary) error {
	if _, err := io.WriteString(a.w, "]"); err != nil {
		return apperrors.EmitterError("close", "cannot write array closing bracket").Wrap(err)
	}
	return nil
}
