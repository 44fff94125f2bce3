package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	d := Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        CodeNotApplicable,
		Message:     "no editable field",
		Target:      "lamp",
		Event:       "Distanse = 5",
		Suggestions: []string{"Distance"},
	}

	assert.Equal(t, `[lamp] Distanse = 5: [not-applicable] no editable field (did you mean "Distance"?)`, d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticsSeverities(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddInfo(CodeNotApplicable, "skipped", "lamp", "Foo = 1")
	d.AddWarning(CodeUnknownTarget, "no such node", "ghost", "")
	assert.False(t, d.HasErrors())

	d.AddError(CodeExecute, "boom", "sun", "")
	d.AddError(CodeUndo, "bang", "", "")
	require.True(t, d.HasErrors())

	assert.EqualError(t, d.Error(), "[sun]: [execute] boom; [undo] bang")

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
