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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/classprefix/cmd/classprefix/commands"
	"github.com/walteh/classprefix/pkg/log"
)

var (
	// Flags
	debug bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "classprefix",
		Short: "Namespace the CSS class names shared between the timetable editor and viewer",
		Long: `classprefix rewrites the className attributes of the timetable components so
the editor and viewer views stop sharing CSS class names. Each subcommand
rewrites exactly one component file in place, using a rule list fixed in
source.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Attach loggers once flags are parsed
			cmd.SetContext(newLoggingContext(cmd))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		commands.NewEditorCmd(),
		commands.NewViewerCmd(),
	)

	return rootCmd
}

// newLoggingContext configures zerolog based on flags and stores both loggers
// on the command context.
func newLoggingContext(cmd *cobra.Command) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	userLogger := log.New(os.Stdout, level)

	ctx := zlog.WithContext(cmd.Context())
	return log.NewContext(ctx, userLogger)
}
