// SPDX-License-Identifier: MIT

// Command sparsechol reads a sparse matrix file, solves (A·Aᵀ)·x = b for a
// constant right-hand side and prints the residual norms of A·x - b.
//
//	sparsechol [flags] <file> <rhs>
//
// Output on success:
//
//	<file>: err_max = <max norm>, err_2 = <euclidean norm>
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	cmd := NewCommand(os.Stdout)
	cmd.PersistentFlags().AddFlagSet(pflag.CommandLine)

	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "sparsechol failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
