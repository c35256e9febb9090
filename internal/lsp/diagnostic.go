package lsp

import (
	"github.com/leapstack-labs/leaplint/internal/runner"
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/token"
)

// diagnosticSource is reported as the origin of every diagnostic.
const diagnosticSource = "leaplint"

// publishDiagnostics lints the document and sends the result to the client.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}
	diagnostics, edits := s.diagnose(doc)
	s.fixes.set(uri, edits)
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &doc.Version,
		Diagnostics: diagnostics,
	})
}

// diagnose lints doc and returns its diagnostics together with the
// quick-fix edits of each fixable one, keyed by fixKey.
func (s *Server) diagnose(doc *Document) ([]Diagnostic, map[string][]TextEdit) {
	diagnostics := []Diagnostic{}
	edits := make(map[string][]TextEdit)

	var res runner.FileResult
	s.runner.Source(URIToPath(doc.URI), doc.Content, &res)
	if res.Err != nil {
		return append(diagnostics, Diagnostic{
			Range:    Range{End: doc.End()},
			Severity: DiagnosticSeverityError,
			Code:     runner.ParseErrorRuleID,
			Source:   diagnosticSource,
			Message:  res.Err.Error(),
		}), edits
	}

	for _, pe := range res.ParseErrors {
		start := doc.OffsetToPosition(pe.Pos.Offset)
		diagnostics = append(diagnostics, Diagnostic{
			Range:    Range{Start: start, End: doc.lineEnd(start.Line)},
			Severity: DiagnosticSeverityError,
			Code:     runner.ParseErrorRuleID,
			Source:   diagnosticSource,
			Message:  pe.Message,
		})
	}

	lint.SortFindings(res.Findings)
	for _, f := range res.Findings {
		diag := findingDiagnostic(doc, f)
		diagnostics = append(diagnostics, diag)
		if textEdits := f.TextEdits(); len(textEdits) > 0 {
			key := fixKey(diag)
			edits[key] = append(edits[key], convertTextEdits(doc, textEdits)...)
		}
	}
	return diagnostics, edits
}

func findingDiagnostic(doc *Document, f lint.Finding) Diagnostic {
	diag := Diagnostic{
		Range:    doc.span(f.Pos, f.EndPos),
		Severity: toDiagnosticSeverity(f.Severity),
		Code:     f.RuleID,
		Source:   diagnosticSource,
		Message:  f.Message,
	}
	if f.DocumentationURL != "" {
		diag.CodeDescription = &CodeDescription{Href: f.DocumentationURL}
	}
	return diag
}

func toDiagnosticSeverity(sev core.Severity) DiagnosticSeverity {
	switch sev {
	case core.SeverityError:
		return DiagnosticSeverityError
	case core.SeverityWarning:
		return DiagnosticSeverityWarning
	case core.SeverityInfo:
		return DiagnosticSeverityInformation
	default:
		return DiagnosticSeverityHint
	}
}

// convertTextEdits maps lint edits, which carry byte offsets into the
// linted text, onto protocol ranges.
func convertTextEdits(doc *Document, edits []lint.TextEdit) []TextEdit {
	out := make([]TextEdit, len(edits))
	for i, edit := range edits {
		out[i] = TextEdit{Range: doc.span(edit.Pos, edit.EndPos), NewText: edit.NewText}
	}
	return out
}

// span converts a source range. An invalid end collapses to start.
func (d *Document) span(start, end token.Position) Range {
	r := Range{Start: d.OffsetToPosition(start.Offset)}
	r.End = r.Start
	if end.IsValid() && end.Offset > start.Offset {
		r.End = d.OffsetToPosition(end.Offset)
	}
	return r
}

// lineEnd is the position before the newline ending line.
func (d *Document) lineEnd(line uint32) Position {
	next := int(line) + 1
	if next >= len(d.Lines) {
		return d.End()
	}
	return d.OffsetToPosition(d.Lines[next] - 1)
}
