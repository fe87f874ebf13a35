/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/recipe"
)

func kindsCmd() *cli.Command {
	return &cli.Command{
		Name:  "kinds",
		Usage: "List the supported recipe kinds",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			for _, k := range recipe.SupportedKinds() {
				if recipe.Kind(k).IsFurnace() {
					fmt.Fprintf(w, "%s (consumes %s)\n", k, defaults.FuelItem)
					continue
				}
				fmt.Fprintln(w, k)
			}
			return nil
		},
	}
}
