package metadata

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestBuildFailsWithMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		builder *ContractBuilder
		wantMsg string
	}{
		{
			name: "missing name",
			builder: NewContractBuilder().
				Version(semver.MustParse("2.1.0")).
				Authors([]string{"Parity Technologies <admin@parity.io>"}),
			wantMsg: "Missing required non-default fields: name",
		},
		{
			name: "missing version",
			builder: NewContractBuilder().
				Name("incrementer").
				Authors([]string{"Parity Technologies <admin@parity.io>"}),
			wantMsg: "Missing required non-default fields: version",
		},
		{
			name: "missing authors",
			builder: NewContractBuilder().
				Name("incrementer").
				Version(semver.MustParse("2.1.0")),
			wantMsg: "Missing required non-default fields: authors",
		},
		{
			name:    "missing all",
			builder: NewContractBuilder(),
			wantMsg: "Missing required non-default fields: name, version, authors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract, err := tt.builder.Build()
			require.Error(t, err)
			assert.Nil(t, contract)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestBuildReportsFieldsInFixedOrder(t *testing.T) {
	_, err := NewContractBuilder().Build()
	require.Error(t, err)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"name", "version", "authors"}, missing.Fields)
}

// Build does not consume the builder: after a failed attempt the missing
// fields can be supplied and Build called again.
func TestBuildIsRepeatable(t *testing.T) {
	builder := NewContractBuilder().
		Name("incrementer").
		Version(semver.MustParse("2.1.0"))

	_, err := builder.Build()
	require.Error(t, err)

	builder.Authors([]string{"Parity Technologies <admin@parity.io>"})
	contract, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, "incrementer", contract.Name())
}

func TestSettingFieldTwicePanics(t *testing.T) {
	tests := []struct {
		name string
		call func(b *ContractBuilder)
	}{
		{"name", func(b *ContractBuilder) { b.Name("a").Name("b") }},
		{"version", func(b *ContractBuilder) {
			b.Version(semver.MustParse("1.0.0")).Version(semver.MustParse("2.0.0"))
		}},
		{"authors", func(b *ContractBuilder) {
			b.Authors([]string{"a"}).Authors([]string{"b"})
		}},
		{"description", func(b *ContractBuilder) { b.Description("a").Description("b") }},
		{"license", func(b *ContractBuilder) { b.License("MIT").License("Apache-2.0") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tt.call(NewContractBuilder()) })
		})
	}
}

func TestEmptyAuthorsPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewContractBuilder().Authors(nil)
	})
}

func TestRelativeURLPanics(t *testing.T) {
	relative := mustURL(t, "docs/index.html")
	assert.Panics(t, func() {
		NewContractBuilder().Documentation(relative)
	})
}

func TestContractJSONOmitsUnsetOptionalFields(t *testing.T) {
	contract, err := NewContractBuilder().
		Name("incrementer").
		Version(semver.MustParse("2.1.0")).
		Authors([]string{"Parity Technologies"}).
		Build()
	require.NoError(t, err)

	out, err := json.Marshal(contract)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"incrementer","version":"2.1.0","authors":["Parity Technologies"]}`,
		string(out))
}

func TestContractJSONWithAllFields(t *testing.T) {
	contract, err := NewContractBuilder().
		Name("incrementer").
		Version(semver.MustParse("2.1.0")).
		Authors([]string{"Parity Technologies <admin@parity.io>"}).
		Description("increment a value").
		Documentation(mustURL(t, "http://docs.rs/")).
		Repository(mustURL(t, "http://github.com/paritytech/ink/")).
		Homepage(mustURL(t, "http://example.com/")).
		License("Apache-2.0").
		Build()
	require.NoError(t, err)

	out, err := json.Marshal(contract)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "incrementer",
		"version": "2.1.0",
		"authors": ["Parity Technologies <admin@parity.io>"],
		"description": "increment a value",
		"documentation": "http://docs.rs/",
		"repository": "http://github.com/paritytech/ink/",
		"homepage": "http://example.com/",
		"license": "Apache-2.0"
	}`, string(out))
}

// The builder copies the authors slice; mutating the caller's slice after
// Build must not leak into the frozen Contract.
func TestContractIsIsolatedFromCallerSlices(t *testing.T) {
	authors := []string{"original"}
	contract, err := NewContractBuilder().
		Name("incrementer").
		Version(semver.MustParse("2.1.0")).
		Authors(authors).
		Build()
	require.NoError(t, err)

	authors[0] = "mutated"
	assert.Equal(t, []string{"original"}, contract.Authors())
}
