package metadata

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// MetadataVersion is the fixed schema version of the metadata document
// format. It identifies the shape of the serialized document and is
// independent of the contract's own version.
const MetadataVersion = "0.1.0"

// metadataVersion is parsed once at package init. MustParse enforces the
// deployment-time invariant that the constant is a valid semantic version.
var metadataVersion = semver.MustParse(MetadataVersion)

// fixedKeys are the top-level keys written by the document itself. A
// flattened ABI or user key colliding with one of them is dropped so it can
// never shadow a fixed field (see MarshalJSON).
var fixedKeys = map[string]bool{
	"metadataVersion": true,
	"source":          true,
	"contract":        true,
	"user":            true,
}

// User is an arbitrary mapping of user-defined metadata, opaque to this
// package. No schema is enforced on it.
type User struct {
	json map[string]any
}

// NewUser wraps a user-defined metadata mapping.
func NewUser(json map[string]any) User {
	return User{json: json}
}

// MarshalJSON serializes the mapping as a plain JSON object. Keys are
// emitted in sorted order (encoding/json map behavior), keeping the output
// deterministic.
func (u User) MarshalJSON() ([]byte, error) {
	if u.json == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(u.json)
}

// ContractMetadata is the complete metadata document for a compiled smart
// contract. It is assembled once per build pass from already-validated
// parts; the only permitted mutation afterwards is RemoveSourceWasm.
type ContractMetadata struct {
	source   Source
	contract *Contract
	user     *User
	// abi is the raw ABI fragment generated during contract compilation.
	// It is passed through opaquely, never validated here.
	abi map[string]json.RawMessage
}

// New assembles a metadata document from an already-constructed Source, an
// already-built Contract, an optional User fragment, and the raw ABI
// mapping. No validation happens here beyond what the parts guarantee; this
// layer is pure composition.
func New(source Source, contract *Contract, user *User, abi map[string]json.RawMessage) *ContractMetadata {
	return &ContractMetadata{
		source:   source,
		contract: contract,
		user:     user,
		abi:      abi,
	}
}

// Source returns the document's source section.
func (m *ContractMetadata) Source() Source {
	return m.source
}

// Contract returns the document's contract section.
func (m *ContractMetadata) Contract() *Contract {
	return m.contract
}

// RemoveSourceWasm clears the wasm payload from the document's source,
// used when emitting a metadata-only artifact distinct from the code
// artifact. Idempotent: calling it on a document without wasm is a no-op.
func (m *ContractMetadata) RemoveSourceWasm() {
	m.source.wasm = nil
}

// MarshalJSON serializes the document as one flat JSON object with the
// fixed key order metadataVersion, source, contract, user (when present),
// followed by the flattened ABI keys in sorted order. The ABI keys are
// merged directly into the top level, not nested under a key of their own.
// Serialization never fails for values satisfying the construction
// invariants.
func (m *ContractMetadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeField("metadataVersion", metadataVersion.String()); err != nil {
		return nil, err
	}
	if err := writeField("source", m.source); err != nil {
		return nil, err
	}
	if err := writeField("contract", m.contract); err != nil {
		return nil, err
	}
	if m.user != nil {
		if err := writeField("user", m.user); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(m.abi))
	for k := range m.abi {
		if fixedKeys[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeField(k, m.abi[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
