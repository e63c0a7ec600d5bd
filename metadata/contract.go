package metadata

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrMissingFields indicates that ContractBuilder.Build was called before
// every required field was supplied. Match with errors.Is; the concrete
// *MissingFieldsError carries the field names.
var ErrMissingFields = errors.New("missing required fields")

// MissingFieldsError reports the required contract fields that were not set
// before Build. Fields is ordered name, version, authors.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required non-default fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// Contract holds the contract-level descriptive fields of the metadata
// document. Name, version, and at least one author are always present;
// every other field is optional and omitted from serialization when unset.
// A Contract is immutable once built.
type Contract struct {
	name          string
	version       *semver.Version
	authors       []string
	description   string
	documentation *url.URL
	repository    *url.URL
	homepage      *url.URL
	license       string
}

// Name returns the contract name.
func (c *Contract) Name() string {
	return c.name
}

// Version returns the contract version.
func (c *Contract) Version() *semver.Version {
	return c.version
}

// Authors returns the list of contract authors.
func (c *Contract) Authors() []string {
	return c.authors
}

// MarshalJSON serializes the contract with the fixed key order name,
// version, authors, description, documentation, repository, homepage,
// license. Unset optional fields are omitted entirely, never emitted as
// null.
func (c *Contract) MarshalJSON() ([]byte, error) {
	type contractJSON struct {
		Name          string   `json:"name"`
		Version       string   `json:"version"`
		Authors       []string `json:"authors"`
		Description   string   `json:"description,omitempty"`
		Documentation string   `json:"documentation,omitempty"`
		Repository    string   `json:"repository,omitempty"`
		Homepage      string   `json:"homepage,omitempty"`
		License       string   `json:"license,omitempty"`
	}
	out := contractJSON{
		Name:        c.name,
		Version:     c.version.String(),
		Authors:     c.authors,
		Description: c.description,
		License:     c.license,
	}
	if c.documentation != nil {
		out.Documentation = c.documentation.String()
	}
	if c.repository != nil {
		out.Repository = c.repository.String()
	}
	if c.homepage != nil {
		out.Homepage = c.homepage.String()
	}
	return json.Marshal(out)
}

// ContractBuilder accumulates contract fields across multiple calls before
// producing one validated, immutable Contract.
//
// Every field is write-once: setting the same field twice is a defect in the
// calling code and panics rather than silently overwriting. Build is
// non-destructive; it may be called again after supplying the fields a
// previous call reported missing.
type ContractBuilder struct {
	name          *string
	version       *semver.Version
	authors       []string
	authorsSet    bool
	description   *string
	documentation *url.URL
	repository    *url.URL
	homepage      *url.URL
	license       *string
}

// NewContractBuilder returns an empty builder.
func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{}
}

// Name sets the contract name (required).
func (b *ContractBuilder) Name(name string) *ContractBuilder {
	if b.name != nil {
		panic("contract name has already been set")
	}
	b.name = &name
	return b
}

// Version sets the contract version (required).
func (b *ContractBuilder) Version(version *semver.Version) *ContractBuilder {
	if b.version != nil {
		panic("contract version has already been set")
	}
	b.version = version
	return b
}

// Authors sets the contract authors (required, at least one).
func (b *ContractBuilder) Authors(authors []string) *ContractBuilder {
	if b.authorsSet {
		panic("contract authors have already been set")
	}
	if len(authors) == 0 {
		panic("contract must have at least one author")
	}
	b.authors = append([]string(nil), authors...)
	b.authorsSet = true
	return b
}

// Description sets the contract description (optional).
func (b *ContractBuilder) Description(description string) *ContractBuilder {
	if b.description != nil {
		panic("contract description has already been set")
	}
	b.description = &description
	return b
}

// Documentation sets the documentation URL (optional, must be absolute).
func (b *ContractBuilder) Documentation(documentation *url.URL) *ContractBuilder {
	if b.documentation != nil {
		panic("contract documentation has already been set")
	}
	b.documentation = requireAbsolute("documentation", documentation)
	return b
}

// Repository sets the source repository URL (optional, must be absolute).
func (b *ContractBuilder) Repository(repository *url.URL) *ContractBuilder {
	if b.repository != nil {
		panic("contract repository has already been set")
	}
	b.repository = requireAbsolute("repository", repository)
	return b
}

// Homepage sets the project homepage URL (optional, must be absolute).
func (b *ContractBuilder) Homepage(homepage *url.URL) *ContractBuilder {
	if b.homepage != nil {
		panic("contract homepage has already been set")
	}
	b.homepage = requireAbsolute("homepage", homepage)
	return b
}

// License sets the license identifier (optional).
func (b *ContractBuilder) License(license string) *ContractBuilder {
	if b.license != nil {
		panic("contract license has already been set")
	}
	b.license = &license
	return b
}

// Build finalizes the builder into a Contract.
//
// It returns a *MissingFieldsError naming every missing required field, in
// the order name, version, authors, if any of them is unset. The builder
// state is left intact, so the caller may set the missing fields and call
// Build again.
func (b *ContractBuilder) Build() (*Contract, error) {
	var missing []string
	if b.name == nil {
		missing = append(missing, "name")
	}
	if b.version == nil {
		missing = append(missing, "version")
	}
	if !b.authorsSet {
		missing = append(missing, "authors")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	c := &Contract{
		name:          *b.name,
		version:       b.version,
		authors:       append([]string(nil), b.authors...),
		documentation: b.documentation,
		repository:    b.repository,
		homepage:      b.homepage,
	}
	if b.description != nil {
		c.description = *b.description
	}
	if b.license != nil {
		c.license = *b.license
	}
	return c, nil
}

// requireAbsolute enforces the builder contract that link fields carry
// absolute URLs. A nil or relative URL is a defect in the calling code.
func requireAbsolute(field string, u *url.URL) *url.URL {
	if u == nil || !u.IsAbs() {
		panic("contract " + field + " must be an absolute URL")
	}
	return u
}
