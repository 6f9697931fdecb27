package patch

import (
	"io"

	"github.com/gabstv/go-bsdiff/pkg/bsdiff"
	"github.com/gabstv/go-bsdiff/pkg/bspatch"
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Differ = (*BSDiff)(nil)

// BSDiff implements ports.Differ with bsdiff and bspatch.
type BSDiff struct{}

// NewBSDiff creates a new BSDiff differ.
func NewBSDiff() *BSDiff {
	return &BSDiff{}
}

// Diff writes the bsdiff patch turning oldData into newData to w.
func (d *BSDiff) Diff(oldData, newData []byte, w io.Writer) error {
	patch, err := bsdiff.Bytes(oldData, newData)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPatchCreateFailed.Error())
	}
	if _, err := w.Write(patch); err != nil {
		return zerr.Wrap(err, domain.ErrPatchCreateFailed.Error())
	}
	return nil
}

// Apply reconstructs the new blob from oldData and a bsdiff patch.
func (d *BSDiff) Apply(oldData, patch []byte) ([]byte, error) {
	out, err := bspatch.Bytes(oldData, patch)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPatchApplyFailed.Error())
	}
	return out, nil
}
