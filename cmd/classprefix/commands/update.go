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

// Package commands holds the classprefix subcommands, one per rule set.
package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/classprefix/pkg/log"
	"github.com/walteh/classprefix/pkg/operation"
	"github.com/walteh/classprefix/pkg/ruleset"
	"github.com/walteh/classprefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newUpdateCmd builds the cobra command for one rule set. Subcommands take no
// arguments: the target path and rule list are fixed in source.
func newUpdateCmd(build func() *ruleset.RuleSet, short string) *cobra.Command {
	return &cobra.Command{
		Use:   build().Name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), build())
		},
	}
}

// 🏃 runUpdate wires the rule set into an update operation and runs it
func runUpdate(ctx context.Context, rs *ruleset.RuleSet) error {
	zlog := zerolog.Ctx(ctx)
	userLogger := log.FromContext(ctx)

	// Targets are addressed relative to the working directory, like the
	// component paths in the repo.
	fileMgr := status.New(".", zlog)

	op, err := operation.NewUpdateOperation(operation.Options{
		RuleSet: rs,
		FileMgr: fileMgr,
		Logger:  userLogger,
	})
	if err != nil {
		return errors.Errorf("creating %s operation: %w", rs.Name, err)
	}

	runner := operation.NewRunner(zlog)
	return runner.Run(ctx, op)
}
