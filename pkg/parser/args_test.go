//go:build !integration

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		positionals []string
		flags       map[string]bool
	}{
		{
			name:        "no arguments",
			args:        nil,
			positionals: []string{},
			flags:       map[string]bool{},
		},
		{
			name:        "positional project name",
			args:        []string{"my-app"},
			positionals: []string{"my-app"},
			flags:       map[string]bool{},
		},
		{
			name:        "numeric positional stays a string",
			args:        []string{"007"},
			positionals: []string{"007"},
			flags:       map[string]bool{},
		},
		{
			name:        "force flag",
			args:        []string{"--force"},
			positionals: []string{},
			flags:       map[string]bool{"force": true},
		},
		{
			name:        "boolean flag does not consume the next token",
			args:        []string{"--force", "my-app"},
			positionals: []string{"my-app"},
			flags:       map[string]bool{"force": true},
		},
		{
			name:        "ts alias resolves the whole group",
			args:        []string{"--ts"},
			positionals: []string{},
			flags:       map[string]bool{"typescript": true, "ts": true, "TS": true},
		},
		{
			name:        "tests alias",
			args:        []string{"--tests"},
			positionals: []string{},
			flags:       map[string]bool{"with-tests": true, "tests": true},
		},
		{
			name:        "vue-router alias",
			args:        []string{"--vue-router"},
			positionals: []string{},
			flags:       map[string]bool{"router": true, "vue-router": true},
		},
		{
			name:        "negated flag",
			args:        []string{"--no-router"},
			positionals: []string{},
			flags:       map[string]bool{"router": false, "vue-router": false},
		},
		{
			name:        "explicit false value",
			args:        []string{"--typescript=false"},
			positionals: []string{},
			flags:       map[string]bool{"typescript": false, "ts": false, "TS": false},
		},
		{
			name:        "explicit truthy value",
			args:        []string{"--force=yes"},
			positionals: []string{},
			flags:       map[string]bool{"force": true},
		},
		{
			name:        "conflicting aliases combine with OR",
			args:        []string{"--ts", "--typescript=false"},
			positionals: []string{},
			flags:       map[string]bool{"typescript": true, "ts": true, "TS": true},
		},
		{
			name:        "conflicting aliases combine with OR regardless of order",
			args:        []string{"--no-typescript", "--TS"},
			positionals: []string{},
			flags:       map[string]bool{"typescript": true, "ts": true, "TS": true},
		},
		{
			name:        "unknown flag accepted as boolean",
			args:        []string{"--pinia"},
			positionals: []string{},
			flags:       map[string]bool{"pinia": true},
		},
		{
			name:        "short flag cluster",
			args:        []string{"-abc"},
			positionals: []string{},
			flags:       map[string]bool{"a": true, "b": true, "c": true},
		},
		{
			name:        "short flag with value",
			args:        []string{"-ab=false"},
			positionals: []string{},
			flags:       map[string]bool{"a": true, "b": false},
		},
		{
			name:        "double dash stops flag parsing",
			args:        []string{"--force", "--", "--ts", "app"},
			positionals: []string{"--ts", "app"},
			flags:       map[string]bool{"force": true},
		},
		{
			name:        "lone dash is positional",
			args:        []string{"-"},
			positionals: []string{"-"},
			flags:       map[string]bool{},
		},
		{
			name:        "current directory",
			args:        []string{".", "--force"},
			positionals: []string{"."},
			flags:       map[string]bool{"force": true},
		},
		{
			name:        "multiple positionals keep order",
			args:        []string{"b", "--router", "a"},
			positionals: []string{"b", "a"},
			flags:       map[string]bool{"router": true, "vue-router": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Parse(tt.args, DefaultConfig())
			require.NotNil(t, opts, "Parse should always return options")

			if diff := cmp.Diff(tt.positionals, opts.Positionals); diff != "" {
				t.Errorf("positionals mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.flags, opts.Flags); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAliasResolution(t *testing.T) {
	viaAlias := Parse([]string{"--ts"}, DefaultConfig())
	viaCanonical := Parse([]string{"--typescript"}, DefaultConfig())
	neither := Parse([]string{"my-app"}, DefaultConfig())

	assert.True(t, viaAlias.TypeScript(), "--ts should enable typescript")
	assert.True(t, viaCanonical.TypeScript(), "--typescript should enable typescript")
	assert.Equal(t, viaCanonical.TypeScript(), viaAlias.TypeScript(), "Alias and canonical should agree")
	assert.False(t, neither.TypeScript(), "typescript should default to false")
	assert.False(t, neither.Has(FlagTypeScript), "typescript should be absent")
}

func TestOptionsAccessors(t *testing.T) {
	opts := Parse([]string{"my-app", "--force", "--tests", "--vue-router"}, DefaultConfig())

	assert.Equal(t, "my-app", opts.ProjectArg(), "First positional should be the project argument")
	assert.True(t, opts.Force(), "force should be set")
	assert.True(t, opts.WithTests(), "with-tests should be set via alias")
	assert.True(t, opts.Router(), "router should be set via alias")
	assert.False(t, opts.TypeScript(), "typescript should not be set")
	assert.Equal(t, []string{"force", "router", "tests", "vue-router", "with-tests"}, opts.FlagNames(), "Flag names should be sorted")
	assert.Equal(t, `positionals=["my-app"] flags=[force=true router=true tests=true vue-router=true with-tests=true]`, opts.String())
}

func TestProjectArgEmpty(t *testing.T) {
	assert.Empty(t, Parse(nil, DefaultConfig()).ProjectArg(), "No positional means no project argument")
}

func TestCustomConfig(t *testing.T) {
	cfg := Config{Aliases: []AliasGroup{{Canonical: "pinia", Aliases: []string{"store", "pinia"}}}}

	opts := Parse([]string{"--store"}, cfg)

	assert.True(t, opts.Bool("pinia"), "Canonical name should resolve from alias")
	assert.Equal(t, []string{"pinia", "store"}, cfg.Aliases[0].Names(), "Duplicate names should collapse")
	assert.False(t, opts.TypeScript(), "Default groups should not apply to a custom config")
}
