package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/internal/testutil"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/leaplint/pkg/lint/rules"
)

const testURI = "file:///project/models/orders.sql"

type rpc map[string]any

func request(id int, method string, params any) rpc {
	return rpc{"jsonrpc": "2.0", "id": id, "method": method, "params": params}
}

func notification(method string, params any) rpc {
	return rpc{"jsonrpc": "2.0", "method": method, "params": params}
}

func didOpen(text string) rpc {
	return notification("textDocument/didOpen", rpc{
		"textDocument": rpc{"uri": testURI, "languageId": "sql", "version": 1, "text": text},
	})
}

func frame(t *testing.T, msgs ...rpc) string {
	t.Helper()
	var b strings.Builder
	for _, m := range msgs {
		body, err := json.Marshal(m)
		require.NoError(t, err)
		fmt.Fprintf(&b, "Content-Length: %d\r\n\r\n%s", len(body), body)
	}
	return b.String()
}

// session runs a server over msgs, appending shutdown and exit, and returns
// everything it wrote.
func session(t *testing.T, msgs ...rpc) []*JSONRPCMessage {
	t.Helper()
	msgs = append(msgs, request(999, "shutdown", nil), notification("exit", nil))
	out, err := run(t, msgs...)
	require.NoError(t, err)
	return out
}

func run(t *testing.T, msgs ...rpc) ([]*JSONRPCMessage, error) {
	t.Helper()
	d, err := dialect.Load("ansi")
	require.NoError(t, err)

	var out bytes.Buffer
	s := NewServer(strings.NewReader(frame(t, msgs...)), &out, Options{
		Dialect: d,
		Version: "test",
		Logger:  testutil.NewTestLogger(t),
	})
	runErr := s.Run(context.Background())

	reader := &Server{reader: bufio.NewReader(&out)}
	var written []*JSONRPCMessage
	for {
		msg, err := reader.readMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		written = append(written, msg)
	}
	return written, runErr
}

func response(t *testing.T, msgs []*JSONRPCMessage, id int) *JSONRPCMessage {
	t.Helper()
	for _, m := range msgs {
		if m.ID != nil && string(*m.ID) == fmt.Sprint(id) {
			return m
		}
	}
	require.Failf(t, "no response", "id %d", id)
	return nil
}

func published(t *testing.T, msgs []*JSONRPCMessage) []PublishDiagnosticsParams {
	t.Helper()
	var out []PublishDiagnosticsParams
	for _, m := range msgs {
		if m.Method != "textDocument/publishDiagnostics" {
			continue
		}
		var p PublishDiagnosticsParams
		require.NoError(t, json.Unmarshal(m.Params, &p))
		out = append(out, p)
	}
	return out
}

func TestInitialize(t *testing.T) {
	msgs := session(t,
		request(1, "initialize", rpc{"processId": 1, "rootUri": "file:///project"}),
		notification("initialized", rpc{}),
	)

	var result InitializeResult
	require.NoError(t, json.Unmarshal(response(t, msgs, 1).Result, &result))
	assert.Equal(t, TextDocumentSyncKindFull, result.Capabilities.TextDocumentSync.Change)
	assert.Equal(t, []CodeActionKind{"quickfix", "source.fixAll.leaplint"},
		result.Capabilities.CodeActionProvider.CodeActionKinds)
	assert.Equal(t, "leaplint", result.ServerInfo.Name)

	var shown bool
	for _, m := range msgs {
		shown = shown || m.Method == "window/showMessage"
	}
	assert.True(t, shown, "ANSI default should be announced")
}

func TestExitWithoutShutdown(t *testing.T) {
	_, err := run(t, notification("exit", nil))
	require.ErrorIs(t, err, ErrExitWithoutShutdown)
}

func TestDisconnectEndsRun(t *testing.T) {
	_, err := run(t, request(1, "initialize", rpc{}))
	require.NoError(t, err)
}

func TestRequestsAfterShutdownFail(t *testing.T) {
	msgs := session(t, request(1, "shutdown", nil), request(2, "textDocument/codeAction", rpc{}))
	resp := response(t, msgs, 2)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidRequest, resp.Error.Code)
}

func TestUnknownMethod(t *testing.T) {
	msgs := session(t,
		request(1, "textDocument/hover", rpc{}),
		notification("$/cancelRequest", rpc{"id": 1}),
	)
	resp := response(t, msgs, 1)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)
}

func TestDiagnosticsOnOpen(t *testing.T) {
	msgs := session(t, didOpen("SELECT a FROM foo"))

	pubs := published(t, msgs)
	require.Len(t, pubs, 1)
	assert.Equal(t, testURI, pubs[0].URI)
	require.Len(t, pubs[0].Diagnostics, 1)

	diag := pubs[0].Diagnostics[0]
	assert.Equal(t, "LT12", diag.Code)
	assert.Equal(t, "leaplint", diag.Source)
	assert.Equal(t, DiagnosticSeverityInformation, diag.Severity)
	assert.Equal(t, Range{Start: Position{0, 14}, End: Position{0, 17}}, diag.Range)
	require.NotNil(t, diag.CodeDescription)
	assert.Equal(t, "https://leaplint.dev/docs/rules/lt12", diag.CodeDescription.Href)
}

func TestParseErrorDiagnostics(t *testing.T) {
	msgs := session(t, didOpen("SELECT 1;\nFOO BAR baz;\nSELECT 2\n"))

	pubs := published(t, msgs)
	require.Len(t, pubs, 1)
	require.Len(t, pubs[0].Diagnostics, 1)
	diag := pubs[0].Diagnostics[0]
	assert.Equal(t, "PRS", diag.Code)
	assert.Equal(t, DiagnosticSeverityError, diag.Severity)
	assert.Equal(t, Range{Start: Position{1, 0}, End: Position{1, 12}}, diag.Range)
}

func TestChangeAndClose(t *testing.T) {
	msgs := session(t,
		didOpen("SELECT a FROM foo"),
		notification("textDocument/didChange", rpc{
			"textDocument":   rpc{"uri": testURI, "version": 2},
			"contentChanges": []rpc{{"text": "SELECT a FROM foo\n"}},
		}),
		notification("textDocument/didClose", rpc{"textDocument": rpc{"uri": testURI}}),
	)

	pubs := published(t, msgs)
	require.Len(t, pubs, 3)
	assert.Len(t, pubs[0].Diagnostics, 1)
	require.NotNil(t, pubs[1].Version)
	assert.Equal(t, 2, *pubs[1].Version)
	assert.Empty(t, pubs[1].Diagnostics)
	assert.Empty(t, pubs[2].Diagnostics)
}

func codeActionRequest(id int, diags []Diagnostic, only ...CodeActionKind) rpc {
	return request(id, "textDocument/codeAction", CodeActionParams{
		TextDocument: TextDocumentIdentifier{URI: testURI},
		Context:      CodeActionContext{Diagnostics: diags, Only: only},
	})
}

func TestQuickFixAndFixAll(t *testing.T) {
	const sql = "WITH a AS (SELECT 1)\nSELECT * FROM a\n"
	lt08 := Diagnostic{
		Range:   Range{Start: Position{1, 0}, End: Position{1, 15}},
		Code:    "LT08",
		Source:  "leaplint",
		Message: "Blank line expected but not found after CTE closing bracket.",
	}

	msgs := session(t,
		didOpen(sql),
		codeActionRequest(1, []Diagnostic{lt08}),
		codeActionRequest(2, []Diagnostic{lt08}, CodeActionKindQuickFix),
		codeActionRequest(3, nil, "source"),
		codeActionRequest(4, []Diagnostic{{Code: "LT08", Source: "other"}}, CodeActionKindQuickFix),
	)

	pubs := published(t, msgs)
	require.Len(t, pubs, 1)
	require.Len(t, pubs[0].Diagnostics, 1)
	assert.Equal(t, lt08.Range, pubs[0].Diagnostics[0].Range)

	decode := func(id int) []CodeAction {
		var actions []CodeAction
		require.NoError(t, json.Unmarshal(response(t, msgs, id).Result, &actions))
		return actions
	}

	quickFix := CodeAction{
		Title:       "Fix LT08: Blank line expected but not found after CTE closing bracket.",
		Kind:        CodeActionKindQuickFix,
		Diagnostics: []Diagnostic{lt08},
		IsPreferred: true,
		Edit: &WorkspaceEdit{Changes: map[string][]TextEdit{
			testURI: {{Range: Range{Start: Position{1, 0}, End: Position{1, 0}}, NewText: "\n"}},
		}},
	}
	fixAll := CodeAction{
		Title: "Fix all leaplint issues",
		Kind:  "source.fixAll.leaplint",
		Edit: &WorkspaceEdit{Changes: map[string][]TextEdit{
			testURI: {{Range: Range{End: Position{2, 0}}, NewText: "WITH a AS (SELECT 1)\n\nSELECT * FROM a\n"}},
		}},
	}

	assert.Equal(t, []CodeAction{quickFix, fixAll}, decode(1))
	assert.Equal(t, []CodeAction{quickFix}, decode(2))
	assert.Equal(t, []CodeAction{fixAll}, decode(3))
	assert.Empty(t, decode(4))
}

func TestFixAllSkipsUnparsable(t *testing.T) {
	msgs := session(t,
		didOpen("SELECT 1;\nFOO BAR baz;\nSELECT 2"),
		codeActionRequest(1, nil, "source.fixAll"),
	)
	var actions []CodeAction
	require.NoError(t, json.Unmarshal(response(t, msgs, 1).Result, &actions))
	assert.Empty(t, actions)
}

func TestWants(t *testing.T) {
	tests := []struct {
		only []CodeActionKind
		kind CodeActionKind
		want bool
	}{
		{nil, CodeActionKindQuickFix, true},
		{[]CodeActionKind{"quickfix"}, CodeActionKindQuickFix, true},
		{[]CodeActionKind{"quickfix"}, codeActionKindFixAll, false},
		{[]CodeActionKind{"source"}, codeActionKindFixAll, true},
		{[]CodeActionKind{"source.fix"}, codeActionKindFixAll, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wants(tt.only, tt.kind), "%v %s", tt.only, tt.kind)
	}
}
