// Package manifest loads the contract-level descriptive fields and the
// optional user-defined metadata fragment from a project manifest file.
//
// The manifest is the collaborator-side source of the Contract section of
// the metadata document: build tooling reads it once per build pass and
// hands the resulting values to the metadata package.
package manifest

import (
	"fmt"
	"net/url"

	"github.com/Masterminds/semver/v3"

	"github.com/substrate-contracts/contract-metadata/metadata"
)

// Manifest is the parsed project manifest.
type Manifest struct {
	// Contract holds the contract-level descriptive fields.
	Contract ContractSection `mapstructure:"contract"`

	// User is the arbitrary user-defined metadata fragment. Opaque: no
	// schema is enforced on it.
	User map[string]any `mapstructure:"user"`
}

// ContractSection holds the raw contract fields as they appear in the
// manifest, before validation by the metadata builder.
type ContractSection struct {
	Name          string   `mapstructure:"name"`
	Version       string   `mapstructure:"version"`
	Authors       []string `mapstructure:"authors"`
	Description   string   `mapstructure:"description"`
	Documentation string   `mapstructure:"documentation"`
	Repository    string   `mapstructure:"repository"`
	Homepage      string   `mapstructure:"homepage"`
	License       string   `mapstructure:"license"`
}

// Build validates the section and produces an immutable metadata.Contract.
//
// Malformed values (unparsable version, relative URLs) return an error, as
// does a section missing required fields, the latter as the builder's
// *metadata.MissingFieldsError, so callers can match it with
// errors.Is(err, metadata.ErrMissingFields) and prompt for the fields.
func (s ContractSection) Build() (*metadata.Contract, error) {
	builder := metadata.NewContractBuilder()

	if s.Name != "" {
		builder.Name(s.Name)
	}
	if s.Version != "" {
		version, err := semver.NewVersion(s.Version)
		if err != nil {
			return nil, fmt.Errorf("parsing contract version %q: %w", s.Version, err)
		}
		builder.Version(version)
	}
	if len(s.Authors) > 0 {
		builder.Authors(s.Authors)
	}
	if s.Description != "" {
		builder.Description(s.Description)
	}
	if s.License != "" {
		builder.License(s.License)
	}

	links := []struct {
		field string
		raw   string
		set   func(*url.URL) *metadata.ContractBuilder
	}{
		{"documentation", s.Documentation, builder.Documentation},
		{"repository", s.Repository, builder.Repository},
		{"homepage", s.Homepage, builder.Homepage},
	}
	for _, link := range links {
		if link.raw == "" {
			continue
		}
		u, err := parseAbsoluteURL(link.field, link.raw)
		if err != nil {
			return nil, err
		}
		link.set(u)
	}

	return builder.Build()
}

// UserFragment returns the user-defined metadata wrapped for the document,
// or nil when the manifest carries none.
func (m *Manifest) UserFragment() *metadata.User {
	if len(m.User) == 0 {
		return nil
	}
	user := metadata.NewUser(m.User)
	return &user
}

// parseAbsoluteURL parses a manifest link field. The metadata builder treats
// a relative URL as a caller defect and panics; manifest content is user
// input, so it is validated here first and reported as a plain error.
func parseAbsoluteURL(field, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing contract %s url %q: %w", field, raw, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("contract %s url %q is not absolute", field, raw)
	}
	return u, nil
}
