package ports

import "io"

// Differ computes and applies binary deltas. Diff must be deterministic.
//
//go:generate go run go.uber.org/mock/mockgen -source=differ.go -destination=mocks/mock_differ.go -package=mocks
type Differ interface {
	// Diff writes the patch turning oldData into newData to w.
	Diff(oldData, newData []byte, w io.Writer) error
	// Apply reconstructs the new blob from oldData and patch.
	Apply(oldData, patch []byte) ([]byte, error)
}
