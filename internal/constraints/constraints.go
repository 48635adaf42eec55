// Package constraints provides type constraints shared by the codec and logging helpers.
package constraints

// Byteseq is satisfied by string and byte slice types, the two input forms accepted by the parser and codec.
type Byteseq interface {
	~string | ~[]byte
}
