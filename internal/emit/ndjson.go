package emit

import (
	"encoding/json"
	"io"

	apperrors "hist2json/pkg/errors"
	"hist2json/pkg/types"
)

// NDJSONEmitter writes one JSON object per line with no surrounding
// brackets or separators other than newlines (§4.7 "document-store mode"),
// the shape most document stores ingest directly.
type NDJSONEmitter struct {
	w io.Writer
}

// NewNDJSON returns a document-store-mode emitter writing to w.
func NewNDJSON(w io.Writer) *NDJSONEmitter {
	return &NDJSONEmitter{w: w}
}

// Emit writes rec as its own line.
func (n *NDJSONEmitter) Emit(rec *types.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return apperrors.EmitterError("write", "cannot marshal record").Wrap(err)
	}
	b = append(b, '\n')
	if _, err := n.w.Write(b); err != nil {
		return apperrors.EmitterError("write", "cannot write record").Wrap(err)
	}
	return nil
}

// Finish is a no-op: document-store mode has no closing punctuation.
func (n *NDJSONEmitter) Finish(summary *types.RunSummary) error {
	return nil
}
