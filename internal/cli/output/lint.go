package output

// LintOutput is the JSON shape of `leaplint lint`.
type LintOutput struct {
	Files   []LintFileResult `json:"files"`
	Summary LintSummary      `json:"summary"`
}

// LintFileResult holds the findings of one file.
type LintFileResult struct {
	Path         string           `json:"path"`
	Diagnostics  []LintDiagnostic `json:"diagnostics"`
	Fixed        bool             `json:"fixed,omitempty"`
	Converged    *bool            `json:"converged,omitempty"` // nil unless fixing ran
	FixLoops     int              `json:"fix_loops,omitempty"`
	SkippedFixes []LintSkippedFix `json:"skipped_fixes,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// LintSkippedFix is a fix the fixer could not apply.
type LintSkippedFix struct {
	Operation string `json:"operation"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Reason    string `json:"reason"`
}

// LintDiagnostic is a single finding.
type LintDiagnostic struct {
	RuleID      string `json:"rule_id"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	EndLine     int    `json:"end_line"`
	EndColumn   int    `json:"end_column"`
	Fixable     bool   `json:"fixable"`
	DocumentURL string `json:"documentation_url,omitempty"`
}

// LintSummary totals a lint run.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesFixed    int `json:"files_fixed"`
	NotConverged  int `json:"not_converged,omitempty"`
	SkippedFixes  int `json:"skipped_fixes,omitempty"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// DialectInfo is the JSON/YAML shape of a dialect in `leaplint dialects`.
type DialectInfo struct {
	Name        string         `json:"name" yaml:"name"`
	Parent      string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	Rules       int            `json:"rules" yaml:"rules"`
	KeywordSets map[string]int `json:"keyword_sets" yaml:"keyword_sets"`
	RuleNames   []string       `json:"rule_names,omitempty" yaml:"rule_names,omitempty"`
}
