package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/up-web-vue/create-up-web-vue/pkg/console"
	"github.com/up-web-vue/create-up-web-vue/pkg/parser"
	"github.com/up-web-vue/create-up-web-vue/pkg/wizard"
)

// Scaffolder materializes a project once the user's answers are known.
type Scaffolder interface {
	Scaffold(ctx context.Context, decision wizard.Decision) error
}

// reportScaffolder prints the decision. Template copying happens in a later step.
type reportScaffolder struct {
	out io.Writer
}

func (r reportScaffolder) Scaffold(_ context.Context, d wizard.Decision) error {
	overwrite := "no"
	switch {
	case d.OverwriteSkipped:
		overwrite = "yes (--force)"
	case d.ShouldOverwrite:
		overwrite = "yes"
	}

	fmt.Fprintln(r.out, console.FormatSuccessMessage(fmt.Sprintf("Project %q is ready to scaffold", d.ProjectName)))
	fmt.Fprintln(r.out, console.FormatInfoMessage("Overwrite existing files: "+overwrite))
	if features := enabledFeatures(d.Flags); len(features) > 0 {
		fmt.Fprintln(r.out, console.FormatInfoMessage("Features: "+strings.Join(features, ", ")))
	}
	return nil
}

// enabledFeatures lists the canonical feature flags that are set, in a fixed order.
func enabledFeatures(flags map[string]bool) []string {
	var features []string
	for _, name := range []string{parser.FlagTypeScript, parser.FlagWithTests, parser.FlagRouter} {
		if flags[name] {
			features = append(features, name)
		}
	}
	return features
}
