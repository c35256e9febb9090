// Package lint provides the rule contract and evaluation loop for segment-tree linting.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/leaplint/pkg/lint/rules"
//
// # Writing Rules
//
// A rule is a RuleDef whose Check function receives a Context for one
// segment: the segment, its ancestors (root first), the dialect and the
// rule's bound options. Rules never edit the tree. They describe edits as
// Fix values which the fix package applies by segment identity:
//
//	var MyRule = lint.RuleDef{
//		ID:           "LT99",
//		Name:         "layout.example",
//		Group:        "layout",
//		Description:  "Example rule",
//		Severity:     core.SeverityWarning,
//		SegmentTypes: []string{"select_statement"},
//		Check:        checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// # Running Rules
//
//	linter := lint.NewLinter(ansi.ANSI, lint.NewConfig())
//	findings := linter.Lint(tree)
//	result, err := linter.Fix(tree) // errors.Is(err, lint.ErrLoopLimit) on runaway fixes
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("LT12")
//	config.SetSeverity("LT08", core.SeverityError)
//	config.SetRuleOptions("LT08", map[string]any{"comma_style": "leading"})
package lint
