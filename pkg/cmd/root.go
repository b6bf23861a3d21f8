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
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// RootOptions holds the configuration for the root command.
type RootOptions struct {
	// Root is the directory to walk.
	Root string
}

// BuildRootCommand constructs the root cobra command. Run without a
// subcommand it behaves like "inject".
func BuildRootCommand() *cobra.Command {
	var opt RootOptions
	injectOpt := InjectOptions{
		RootOptions: &opt,
	}

	cmd := &cobra.Command{
		Use:           "spdxheaders",
		Short:         "spdxheaders adds SPDX license headers to C++ sources",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			injectOpt.bindQuiet(cmd)
			return RunInject(cmd.Context(), injectOpt, cmd.OutOrStdout())
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opt.Root, "root", ".", "Directory to walk")
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	injectOpt.addFlags(cmd)

	cmd.AddCommand(BuildInjectCommand(&opt))
	cmd.AddCommand(BuildVersionCommand(&opt))

	return cmd
}

// Execute runs the root command.
func Execute(ctx context.Context, args []string) error {
	rootCmd := BuildRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
