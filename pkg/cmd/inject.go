// Copyright 2026 Google LLC
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

package cmd

import (
	"context"
	"io"

	"github.com/gke-labs/spdxheaders/pkg/config"
	"github.com/gke-labs/spdxheaders/pkg/headers"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// InjectOptions holds the configuration for the "inject" command.
type InjectOptions struct {
	*RootOptions

	// Skip patterns are added to those from the config file.
	Skip []string

	// Quiet overrides the config file when set.
	Quiet *bool

	quiet bool
}

func (o *InjectOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&o.Skip, "skip", nil, "Gitignore-style pattern to exclude from the walk (repeatable)")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Do not print per-file status lines")
}

func (o *InjectOptions) bindQuiet(cmd *cobra.Command) {
	if cmd.Flags().Changed("quiet") {
		o.Quiet = &o.quiet
	}
}

// BuildInjectCommand constructs the cobra command for "inject".
func BuildInjectCommand(rootOpt *RootOptions) *cobra.Command {
	opt := InjectOptions{
		RootOptions: rootOpt,
	}

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Prepend the SPDX header to every .cpp and .h file missing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opt.bindQuiet(cmd)
			return RunInject(cmd.Context(), opt, cmd.OutOrStdout())
		},
	}
	opt.addFlags(cmd)

	return cmd
}

// RunInject executes the business logic for the "inject" command. Status
// lines go to out.
func RunInject(ctx context.Context, opt InjectOptions, out io.Writer) error {
	log := klog.FromContext(ctx)

	cfg, err := config.Load(opt.Root)
	if err != nil {
		return err
	}

	options := headers.DefaultOptions()
	options.Skip = append(append([]string{}, cfg.Skip...), opt.Skip...)

	quiet := cfg.IsQuiet()
	if opt.Quiet != nil {
		quiet = *opt.Quiet
	}
	if !quiet {
		options.Out = out
	}

	summary, err := headers.Inject(ctx, opt.Root, options)
	if err != nil {
		return err
	}
	log.Info("Added file headers", "root", opt.Root, "injected", summary.Injected, "present", summary.Present)
	return nil
}
