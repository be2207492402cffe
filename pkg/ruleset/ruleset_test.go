package ruleset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/classprefix/pkg/text"
)

func applyRules(t *testing.T, rs *RuleSet, content string) string {
	t.Helper()

	result, err := text.NewRewriter().Rewrite(context.Background(), strings.NewReader(content), rs.Rules)
	require.NoError(t, err)
	return string(result.ModifiedContent)
}

func TestEditor(t *testing.T) {
	rs := Editor()

	assert.Equal(t, "editor", rs.Name)
	assert.Equal(t, "src/components/TimetableEditor.jsx", rs.TargetPath)
	assert.Equal(t, "editor-", rs.Prefix)
	assert.Len(t, rs.Rules, 2)
	require.NoError(t, rs.Validate())

	got := applyRules(t, rs, `<div className="timetable-grid"><span className="subject-code">CS101</span></div>`)
	assert.Equal(t, `<div className="editor-timetable-grid"><span className="editor-subject-code">CS101</span></div>`, got)
}

func TestViewer(t *testing.T) {
	rs := Viewer()

	assert.Equal(t, "viewer", rs.Name)
	assert.Equal(t, "src/components/TimetableViewer.jsx", rs.TargetPath)
	assert.Equal(t, "viewer-", rs.Prefix)
	assert.Len(t, rs.Rules, 22)
	require.NoError(t, rs.Validate())
}

func TestSubjectCode_PrefixDependsOnRuleSet(t *testing.T) {
	content := `<span className="subject-code">MA201</span>`

	assert.Equal(t,
		`<span className="viewer-subject-code">MA201</span>`,
		applyRules(t, Viewer(), content),
	)
	assert.Equal(t,
		`<span className="editor-subject-code">MA201</span>`,
		applyRules(t, Editor(), content),
	)
}

func TestViewer_ClassroomBadgeVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain_badge",
			content: `<div className="classroom-badge">R201</div>`,
			want:    `<div className="viewer-classroom-badge">R201</div>`,
		},
		{
			name:    "fixed_variant",
			content: `<div className="classroom-badge-fixed">R201</div>`,
			want:    `<div className="viewer-classroom-badge-fixed">R201</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyRules(t, Viewer(), tt.content))
		})
	}
}

func TestViewer_CompactVariantsStayDistinct(t *testing.T) {
	// Quoted patterns must not bleed into longer class names.
	content := `<div className="cell-content-compact"><div className="cell-content">`
	got := applyRules(t, Viewer(), content)
	assert.Equal(t, `<div className="viewer-cell-content-compact"><div className="viewer-cell-content">`, got)
}

func TestAll(t *testing.T) {
	sets := All()
	require.Len(t, sets, 2)
	assert.Equal(t, "editor", sets[0].Name)
	assert.Equal(t, "viewer", sets[1].Name)

	for _, rs := range sets {
		for _, rule := range rs.Rules {
			matched, err := text.FilterRulesForPath([]text.ReplacementRule{rule}, rs.TargetPath)
			require.NoError(t, err)
			assert.Len(t, matched, 1, "rule %q should apply to its own target", rule.FromText)
		}
	}
}
