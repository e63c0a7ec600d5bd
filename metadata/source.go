package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CodeHash is the 32-byte content hash of the compiled contract code.
type CodeHash [32]byte

// MarshalJSON serializes the hash in its canonical byte-string form.
func (h CodeHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeByteStr(h[:]))
}

// String returns the display form, always 0x-prefixed.
func (h CodeHash) String() string {
	return displayByteStr(h[:])
}

// SourceWasm holds the bytes of the compiled Wasm contract code.
type SourceWasm struct {
	wasm []byte
}

// NewSourceWasm wraps compiled code bytes.
func NewSourceWasm(wasm []byte) SourceWasm {
	return SourceWasm{wasm: wasm}
}

// Bytes returns the wrapped code bytes.
func (w SourceWasm) Bytes() []byte {
	return w.wasm
}

// MarshalJSON serializes the code in its canonical byte-string form.
func (w SourceWasm) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeByteStr(w.wasm))
}

// String returns the display form, always 0x-prefixed.
func (w SourceWasm) String() string {
	return displayByteStr(w.wasm)
}

// Language identifies the source language a contract is written in.
type Language int

// Supported source languages.
const (
	LanguageInk Language = iota
	LanguageSolidity
	LanguageAssemblyScript
)

// String returns the fixed display label for the language. The label is a
// lookup, not derived from the variant name ("ink!" for LanguageInk).
func (l Language) String() string {
	switch l {
	case LanguageInk:
		return "ink!"
	case LanguageSolidity:
		return "Solidity"
	case LanguageAssemblyScript:
		return "AssemblyScript"
	default:
		panic(fmt.Sprintf("unknown language variant %d", int(l)))
	}
}

// Compiler identifies the compiler used to produce the contract code.
type Compiler int

// Supported compilers.
const (
	CompilerRustC Compiler = iota
	CompilerSolang
)

// String returns the fixed display label for the compiler ("rustc" for
// CompilerRustC, "solang" for CompilerSolang).
func (c Compiler) String() string {
	switch c {
	case CompilerRustC:
		return "rustc"
	case CompilerSolang:
		return "solang"
	default:
		panic(fmt.Sprintf("unknown compiler variant %d", int(c)))
	}
}

// SourceLanguage is a source language together with its version.
// It serializes as the single string "<label> <version>".
type SourceLanguage struct {
	language Language
	version  *semver.Version
}

// NewSourceLanguage pairs a language with its version.
func NewSourceLanguage(language Language, version *semver.Version) SourceLanguage {
	return SourceLanguage{language: language, version: version}
}

func (l SourceLanguage) String() string {
	return fmt.Sprintf("%s %s", l.language, l.version)
}

func (l SourceLanguage) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// SourceCompiler is a compiler together with its version.
// It serializes as the single string "<label> <version>".
type SourceCompiler struct {
	compiler Compiler
	version  *semver.Version
}

// NewSourceCompiler pairs a compiler with its version.
func NewSourceCompiler(compiler Compiler, version *semver.Version) SourceCompiler {
	return SourceCompiler{compiler: compiler, version: version}
}

func (c SourceCompiler) String() string {
	return fmt.Sprintf("%s %s", c.compiler, c.version)
}

func (c SourceCompiler) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Source describes the provenance of the compiled contract: its code hash,
// source language, and compiler. The compiled code itself is optional; it
// is absent when the metadata document is emitted separately from the code.
type Source struct {
	hash     CodeHash
	language SourceLanguage
	compiler SourceCompiler
	wasm     *SourceWasm
}

// NewSource constructs a Source. Hash, language, and compiler are always
// required; wasm may be nil.
func NewSource(wasm *SourceWasm, hash CodeHash, language SourceLanguage, compiler SourceCompiler) Source {
	return Source{
		hash:     hash,
		language: language,
		compiler: compiler,
		wasm:     wasm,
	}
}

// Hash returns the code hash.
func (s Source) Hash() CodeHash {
	return s.hash
}

// Language returns the source language and version.
func (s Source) Language() SourceLanguage {
	return s.language
}

// Compiler returns the compiler and version.
func (s Source) Compiler() SourceCompiler {
	return s.compiler
}

// Wasm returns the compiled code, or nil if absent.
func (s Source) Wasm() *SourceWasm {
	return s.wasm
}

// MarshalJSON serializes the source with the fixed key order hash, language,
// compiler, wasm. The wasm key is omitted entirely when absent.
func (s Source) MarshalJSON() ([]byte, error) {
	type sourceJSON struct {
		Hash     CodeHash       `json:"hash"`
		Language SourceLanguage `json:"language"`
		Compiler SourceCompiler `json:"compiler"`
		Wasm     *SourceWasm    `json:"wasm,omitempty"`
	}
	return json.Marshal(sourceJSON{
		Hash:     s.hash,
		Language: s.language,
		Compiler: s.compiler,
		Wasm:     s.wasm,
	})
}
