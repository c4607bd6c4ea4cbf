// SPDX-License-Identifier: MIT

// Command lvmath prints 3×3 rotation matrices built with the linear package,
// in any of the bundled scalar representations.
//
//	lvmath rotate --axis z --angle 90 --vector 1,0,0
//	lvmath quat --w 0.7071 --z 0.7071 --normalize -o yaml
//	lvmath compose x:90 z:45 --scalar decimal
//
// Flags may also come from LVMATH_* environment variables or a YAML file
// passed with --config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
