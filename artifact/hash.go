package artifact

import (
	"golang.org/x/crypto/blake2b"

	"github.com/substrate-contracts/contract-metadata/metadata"
)

// HashCode returns the blake2b-256 content hash of compiled contract code.
// This is the hash recorded in the document's source section and used
// on-chain to identify the uploaded code.
func HashCode(code []byte) metadata.CodeHash {
	return metadata.CodeHash(blake2b.Sum256(code))
}
