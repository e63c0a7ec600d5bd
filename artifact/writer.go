package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/substrate-contracts/contract-metadata/internal/output"
	"github.com/substrate-contracts/contract-metadata/internal/version"
	"github.com/substrate-contracts/contract-metadata/metadata"
)

// Options controls artifact writing.
type Options struct {
	// OutDir is the directory artifacts are written to. Created if needed.
	OutDir string

	// Kind selects which artifacts to produce. Defaults to KindAll.
	Kind Kind
}

// Result reports where artifacts were written. Paths for artifacts the
// selected kind skips are empty.
type Result struct {
	// DestWasm is the path of the compiled code file.
	DestWasm string

	// DestMetadata is the path of the metadata-only document.
	DestMetadata string

	// DestBundle is the path of the bundled code + metadata file.
	DestBundle string

	// TargetDir is the directory artifacts were written to.
	TargetDir string
}

// Summary returns a short human-readable listing of the written artifacts.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "artifacts written to %s\n", r.TargetDir)
	if r.DestBundle != "" {
		fmt.Fprintf(&b, "  - %s (code + metadata)\n", filepath.Base(r.DestBundle))
	}
	if r.DestWasm != "" {
		fmt.Fprintf(&b, "  - %s (the contract's code)\n", filepath.Base(r.DestWasm))
	}
	if r.DestMetadata != "" {
		fmt.Fprintf(&b, "  - %s (the contract's metadata)\n", filepath.Base(r.DestMetadata))
	}
	return b.String()
}

// Write emits the artifacts for one build pass.
//
// For KindAll it writes <name>.wasm, <name>.contract (the document with the
// code embedded), and <name>.json (the document with the code stripped via
// RemoveSourceWasm). For KindCodeOnly only <name>.wasm is written and the
// document is ignored. The document is mutated in place when the metadata
// file is emitted; callers wanting the embedded code afterwards should
// serialize the bundle themselves first.
func Write(doc *metadata.ContractMetadata, code []byte, opts Options) (*Result, error) {
	kind := opts.Kind
	if kind == "" {
		kind = KindAll
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	name := doc.Contract().Name()
	result := &Result{TargetDir: opts.OutDir}

	result.DestWasm = filepath.Join(opts.OutDir, name+".wasm")
	if err := os.WriteFile(result.DestWasm, code, 0o644); err != nil {
		return nil, fmt.Errorf("writing code: %w", err)
	}
	output.Debug("wrote code artifact", "file", result.DestWasm, "bytes", len(code))

	if kind == KindCodeOnly {
		return result, nil
	}

	// Bundle first: it carries the embedded code, which the metadata-only
	// document below strips.
	bundle, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing bundle: %w", err)
	}
	result.DestBundle = filepath.Join(opts.OutDir, name+".contract")
	if err := os.WriteFile(result.DestBundle, bundle, 0o644); err != nil {
		return nil, fmt.Errorf("writing bundle: %w", err)
	}
	output.Debug("wrote bundle artifact", "file", result.DestBundle)

	doc.RemoveSourceWasm()
	meta, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing metadata: %w", err)
	}
	result.DestMetadata = filepath.Join(opts.OutDir, name+".json")
	if err := os.WriteFile(result.DestMetadata, meta, 0o644); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}
	output.Debug("wrote metadata artifact", "file", result.DestMetadata)

	info := version.GetInfo()
	output.Info("contract artifacts ready",
		"contract", name,
		"dir", opts.OutDir,
		"kind", kind.String(),
		"schema", info.SchemaVersion,
		"writer", info.Version,
	)
	return result, nil
}
