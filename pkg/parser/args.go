package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/up-web-vue/create-up-web-vue/pkg/logger"
	"github.com/up-web-vue/create-up-web-vue/pkg/sliceutil"
	"github.com/up-web-vue/create-up-web-vue/pkg/stringutil"
)

var argsLog = logger.New("parser:args")

// Canonical flag names.
const (
	FlagForce      = "force"
	FlagTypeScript = "typescript"
	FlagWithTests  = "with-tests"
	FlagRouter     = "router"
)

// AliasGroup maps synonyms onto a canonical flag name.
type AliasGroup struct {
	Canonical string
	Aliases   []string
}

// Names returns the canonical name followed by its aliases.
func (g AliasGroup) Names() []string {
	return sliceutil.Deduplicate(append([]string{g.Canonical}, g.Aliases...))
}

// Config declares the alias groups known to the parser.
type Config struct {
	Aliases []AliasGroup
}

// DefaultConfig returns the alias groups of the create command.
func DefaultConfig() Config {
	return Config{
		Aliases: []AliasGroup{
			{Canonical: FlagTypeScript, Aliases: []string{"ts", "TS"}},
			{Canonical: FlagWithTests, Aliases: []string{"tests"}},
			{Canonical: FlagRouter, Aliases: []string{"vue-router"}},
		},
	}
}

func (c Config) groupOf(name string) []string {
	for _, g := range c.Aliases {
		if names := g.Names(); sliceutil.Contains(names, name) {
			return names
		}
	}
	return []string{name}
}

// Options is the parsed command line.
type Options struct {
	// Positionals holds every token not consumed as a flag, in order.
	Positionals []string
	// Flags holds every flag seen, under each name of its alias group.
	Flags map[string]bool
}

// Bool reports the value of a flag; absent flags are false.
func (o *Options) Bool(name string) bool {
	return o.Flags[name]
}

// Has reports whether the flag, or any name in its alias group, was given at all.
func (o *Options) Has(name string) bool {
	_, ok := o.Flags[name]
	return ok
}

func (o *Options) Force() bool      { return o.Bool(FlagForce) }
func (o *Options) TypeScript() bool { return o.Bool(FlagTypeScript) }
func (o *Options) WithTests() bool  { return o.Bool(FlagWithTests) }
func (o *Options) Router() bool     { return o.Bool(FlagRouter) }

// ProjectArg returns the first positional argument, or "" when there is none.
func (o *Options) ProjectArg() string {
	if len(o.Positionals) == 0 {
		return ""
	}
	return o.Positionals[0]
}

// FlagNames returns the names of all flags seen, sorted.
func (o *Options) FlagNames() []string {
	names := sliceutil.MapToSlice(o.Flags)
	sort.Strings(names)
	return names
}

func (o *Options) String() string {
	flags := make([]string, 0, len(o.Flags))
	for _, name := range o.FlagNames() {
		flags = append(flags, fmt.Sprintf("%s=%t", name, o.Flags[name]))
	}
	return fmt.Sprintf("positionals=%q flags=[%s]", o.Positionals, strings.Join(flags, " "))
}

// Parse scans args (program name excluded) according to cfg. It never fails.
func Parse(args []string, cfg Config) *Options {
	opts := &Options{
		Positionals: []string{},
		Flags:       make(map[string]bool),
	}

	set := func(name string, value bool) {
		for _, n := range cfg.groupOf(name) {
			opts.Flags[n] = opts.Flags[n] || value
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			opts.Positionals = append(opts.Positionals, args[i+1:]...)
			i = len(args)

		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			body := arg[2:]
			if name, value, ok := strings.Cut(body, "="); ok {
				if name != "" {
					set(name, !stringutil.IsFalsy(value))
				}
				continue
			}
			if name, ok := strings.CutPrefix(body, "no-"); ok && name != "" {
				set(name, false)
				continue
			}
			set(body, true)

		case strings.HasPrefix(arg, "-") && len(arg) > 1 && arg[1] != '-':
			letters, value, hasValue := strings.Cut(arg[1:], "=")
			runes := []rune(letters)
			for j, r := range runes {
				if hasValue && j == len(runes)-1 {
					set(string(r), !stringutil.IsFalsy(value))
					continue
				}
				set(string(r), true)
			}

		default:
			opts.Positionals = append(opts.Positionals, arg)
		}
	}

	argsLog.Printf("parsed arguments: %s", opts)
	return opts
}
