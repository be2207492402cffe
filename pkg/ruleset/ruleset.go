// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ruleset holds the fixed, authoring-time replacement lists that
// namespace the CSS class names shared between the timetable editor and
// viewer components.
package ruleset

import (
	"github.com/walteh/classprefix/pkg/text"
)

// 📚 RuleSet binds an ordered rule list to the one file it rewrites
type RuleSet struct {
	Name       string                 // Short name (editor/viewer)
	TargetPath string                 // File the rules rewrite, relative to the repo root
	Prefix     string                 // Class name prefix the rules introduce
	Rules      []text.ReplacementRule // Ordered replacement rules
}

// 🔍 Validate checks the rule set is well formed
func (rs *RuleSet) Validate() error {
	return text.ValidateRules(rs.Rules)
}

// 📝 String returns a string representation of the rule set
func (rs *RuleSet) String() string {
	return rs.Name + " -> " + rs.TargetPath
}

// classEntry is one class name to prefix. openEnded entries leave off the
// closing quote so every suffixed variant of the name is prefixed too.
type classEntry struct {
	name      string
	openEnded bool
}

// 🔄 buildRules expands class entries into className attribute substitutions
func buildRules(glob, prefix string, entries []classEntry) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(entries))
	for _, entry := range entries {
		from := `className="` + entry.name
		to := `className="` + prefix + entry.name
		if !entry.openEnded {
			from += `"`
			to += `"`
		}
		rules = append(rules, text.ReplacementRule{
			FromText:       from,
			ToText:         to,
			FileFilterGlob: glob,
		})
	}
	return rules
}

// 🏭 Editor returns the rule set for the timetable editor component
func Editor() *RuleSet {
	const (
		target = "src/components/TimetableEditor.jsx"
		glob   = "**/TimetableEditor.jsx"
		prefix = "editor-"
	)

	return &RuleSet{
		Name:       "editor",
		TargetPath: target,
		Prefix:     prefix,
		Rules: buildRules(glob, prefix, []classEntry{
			{name: "timetable-grid"},
			{name: "subject-code"},
		}),
	}
}

// 🏭 Viewer returns the rule set for the timetable viewer component
func Viewer() *RuleSet {
	const (
		target = "src/components/TimetableViewer.jsx"
		glob   = "**/TimetableViewer.jsx"
		prefix = "viewer-"
	)

	return &RuleSet{
		Name:       "viewer",
		TargetPath: target,
		Prefix:     prefix,
		Rules: buildRules(glob, prefix, []classEntry{
			{name: "empty-cell"},
			{name: "break-cell"},
			{name: "lab-cell"},
			{name: "subject-code"},
			{name: "teacher-name"},
			{name: "cell-content"},
			{name: "cell-content-compact"},
			{name: "day-label"},
			{name: "time-header"},
			{name: "day-header"},
			{name: "fixed-badge"},
			// Matches classroom-badge, classroom-badge-fixed, etc.
			{name: "classroom-badge", openEnded: true},
			{name: "break-icon"},
			{name: "break-label"},
			{name: "time-range"},
			{name: "lab-content-horizontal"},
			{name: "batch-compact"},
			{name: "batch-name-compact"},
			{name: "batch-lab-compact"},
			{name: "batch-room-compact"},
			{name: "batch-teacher-compact"},
			{name: "timetable-grid"},
		}),
	}
}

// All returns every rule set, in the order they are normally run.
func All() []*RuleSet {
	return []*RuleSet{Editor(), Viewer()}
}
