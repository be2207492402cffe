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
	"context"

	"github.com/walteh/classprefix/pkg/log"
	"github.com/walteh/classprefix/pkg/ruleset"
	"github.com/walteh/classprefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a single executable unit of work
type Operation interface {
	// Name returns a short name for the operation
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an update operation
type Options struct {
	// RuleSet is the rule list bound to one target file
	RuleSet *ruleset.RuleSet
	// FileMgr handles reads and atomic writes
	FileMgr status.FileManager
	// Logger is the console logger
	Logger *log.Logger
}

// 🔍 validate checks that all required options are set
func (opts Options) validate() error {
	if opts.RuleSet == nil {
		return errors.Errorf("rule set is required")
	}
	if opts.FileMgr == nil {
		return errors.Errorf("file manager is required")
	}
	if opts.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return opts.RuleSet.Validate()
}
