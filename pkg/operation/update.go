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

package operation

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/walteh/classprefix/pkg/log"
	"github.com/walteh/classprefix/pkg/status"
	"github.com/walteh/classprefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewUpdateOperation creates the update operation for one rule set
func NewUpdateOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &updateOperation{
		opts:     opts,
		rewriter: text.NewRewriter(),
	}, nil
}

// 📦 updateOperation rewrites the class names in one target file
type updateOperation struct {
	opts     Options
	rewriter *text.Rewriter
}

// Name implements Operation.Name
func (op *updateOperation) Name() string {
	return op.opts.RuleSet.Name
}

// 🏃 Execute runs the rewrite: read, substitute, write back, acknowledge
func (op *updateOperation) Execute(ctx context.Context) error {
	rs := op.opts.RuleSet

	op.opts.Logger.StartRunOperation(ctx, log.RunOperation{
		Name:       rs.Name,
		Prefix:     rs.Prefix,
		TargetPath: rs.TargetPath,
	})
	defer op.opts.Logger.EndRunOperation(ctx)

	// Keep only the rules scoped to this target
	rules, err := text.FilterRulesForPath(rs.Rules, rs.TargetPath)
	if err != nil {
		return errors.Errorf("filtering rules for %s: %w", rs.TargetPath, err)
	}

	// Read the whole target into memory
	content, err := op.opts.FileMgr.ReadFile(ctx, rs.TargetPath)
	if err != nil {
		return errors.Errorf("reading %s: %w", rs.TargetPath, err)
	}

	// Apply every rule, in order, over the full blob
	result, err := op.rewriter.Rewrite(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return errors.Errorf("rewriting %s: %w", rs.TargetPath, err)
	}

	// Write back in place, even when nothing changed
	if err := op.opts.FileMgr.WriteFileAtomic(ctx, rs.TargetPath, result.ModifiedContent); err != nil {
		return errors.Errorf("writing %s: %w", rs.TargetPath, err)
	}

	fileStatus := status.Compare(result.OriginalContent, result.ModifiedContent)
	op.opts.Logger.LogFileOperation(ctx, log.FileOperation{
		Path:         rs.TargetPath,
		Status:       fileStatus.String(),
		IsModified:   fileStatus == status.StatusModified,
		Replacements: result.ReplacementCount,
	})

	op.opts.Logger.Successf("Successfully updated %s with %s prefixes",
		filepath.Base(rs.TargetPath), rs.Prefix)

	return nil
}
