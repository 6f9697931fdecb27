package domain

// PatchKey identifies a patch cache entry by the content hashes of its two inputs.
type PatchKey struct {
	From Hash
	To   Hash
}

// NewPatchKey returns the key for a patch that turns from into to.
func NewPatchKey(from, to Hash) PatchKey {
	return PatchKey{From: from, To: to}
}

// String returns "<hex(from)>_<hex(to)>".
func (k PatchKey) String() string {
	return k.From.Hex() + "_" + k.To.Hex()
}

// FileName returns the canonical cache file name of the entry.
func (k PatchKey) FileName() string {
	return k.String() + PatchFileExtension
}
