package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/leapstack-labs/leaplint/pkg/parser"
)

// codeActionKindFixAll is the source action that applies every fix.
const codeActionKindFixAll = CodeActionKindSourceFixAll + ".leaplint"

// fixCache holds the quick-fix edits of the last published diagnostics,
// per document.
type fixCache struct {
	mu    sync.RWMutex
	fixes map[string]map[string][]TextEdit // URI -> fixKey -> edits
}

func newFixCache() *fixCache {
	return &fixCache{fixes: make(map[string]map[string][]TextEdit)}
}

func (c *fixCache) set(uri string, edits map[string][]TextEdit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixes[uri] = edits
}

func (c *fixCache) get(uri string, diag Diagnostic) []TextEdit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fixes[uri][fixKey(diag)]
}

func (c *fixCache) clear(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fixes, uri)
}

// fixKey identifies a diagnostic across the publish and codeAction round
// trip. Clients echo the code and range unchanged.
func fixKey(diag Diagnostic) string {
	return fmt.Sprintf("%s@%d:%d", diag.Code, diag.Range.Start.Line, diag.Range.Start.Character)
}

func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	s.sendResponse(msg.ID, s.codeActions(params), nil)
	return nil
}

// codeActions offers one quick fix per fixable diagnostic in the request,
// plus a fix-all action for the whole document.
func (s *Server) codeActions(params CodeActionParams) []CodeAction {
	actions := []CodeAction{}
	uri := params.TextDocument.URI
	only := params.Context.Only

	if wants(only, CodeActionKindQuickFix) {
		for _, diag := range params.Context.Diagnostics {
			if diag.Source != diagnosticSource {
				continue
			}
			edits := s.fixes.get(uri, diag)
			if len(edits) == 0 {
				continue
			}
			actions = append(actions, CodeAction{
				Title:       fmt.Sprintf("Fix %s: %s", diag.Code, diag.Message),
				Kind:        CodeActionKindQuickFix,
				Diagnostics: []Diagnostic{diag},
				IsPreferred: true,
				Edit:        &WorkspaceEdit{Changes: map[string][]TextEdit{uri: edits}},
			})
		}
	}

	if wants(only, codeActionKindFixAll) {
		if edit := s.fixAll(uri); edit != nil {
			actions = append(actions, CodeAction{
				Title: "Fix all leaplint issues",
				Kind:  codeActionKindFixAll,
				Edit:  edit,
			})
		}
	}
	return actions
}

// wants reports whether kind falls under one of the requested kinds. An
// empty request accepts everything.
func wants(only []CodeActionKind, kind CodeActionKind) bool {
	if len(only) == 0 {
		return true
	}
	for _, o := range only {
		if kind == o || strings.HasPrefix(string(kind), string(o)+".") {
			return true
		}
	}
	return false
}

// fixAll runs the fix loop on the document and returns a whole-document
// replacement, or nil when nothing changes. Documents with parse errors are
// left alone.
func (s *Server) fixAll(uri string) *WorkspaceEdit {
	doc := s.documents.Get(uri)
	if doc == nil {
		return nil
	}
	tree, err := parser.Parse(doc.Content, s.dialect)
	if err != nil || len(parser.Errors(tree)) > 0 {
		return nil
	}

	res, err := s.runner.Linter().Fix(tree)
	if err != nil {
		s.logger.Warn("fix loop did not converge", "uri", uri, "error", err)
	}
	fixed := tree.RawText()
	if fixed == doc.Content {
		return nil
	}
	s.logger.Debug("fix all", "uri", uri, "loops", res.Loops, "applied", len(res.Applied))
	return &WorkspaceEdit{Changes: map[string][]TextEdit{
		uri: {{Range: Range{End: doc.End()}, NewText: fixed}},
	}}
}
