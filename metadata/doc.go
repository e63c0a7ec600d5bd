// Package metadata defines the versioned metadata document describing a
// compiled Wasm smart contract: its source provenance (language, compiler,
// code hash, optionally the compiled blob), contract-level descriptive
// fields, an opaque user-supplied fragment, and the raw ABI fragment
// produced by contract compilation.
//
// The document serializes to a single flat JSON object with a fixed key
// order, suitable for golden-file comparison:
//
//	language := metadata.NewSourceLanguage(metadata.LanguageInk, semver.MustParse("2.1.0"))
//	compiler := metadata.NewSourceCompiler(metadata.CompilerRustC, semver.MustParse("1.46.0-nightly"))
//	wasm := metadata.NewSourceWasm([]byte{0x00})
//	source := metadata.NewSource(&wasm, metadata.CodeHash{}, language, compiler)
//
//	contract, err := metadata.NewContractBuilder().
//		Name("incrementer").
//		Version(semver.MustParse("2.1.0")).
//		Authors([]string{"Parity Technologies <admin@parity.io>"}).
//		Build()
//	if err != nil {
//		// one or more required fields missing
//	}
//
//	doc := metadata.New(source, contract, nil, abi)
//	out, err := json.Marshal(doc)
//
// Construction is pure and in-memory. Values are immutable once built; the
// single exception is ContractMetadata.RemoveSourceWasm, which clears the
// wasm payload when the metadata file is emitted separately from the code.
package metadata
