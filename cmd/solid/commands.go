package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jward/solid"
	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area <kind> [dims...]",
	Short: "Compute the area of a shape",
	Long:  "Builds a shape of the given kind from its dimensions and prints its area. Run 'solid kinds' to list kinds and their parameters.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArea,
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List registered shape kinds",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

var userDataCmd = &cobra.Command{
	Use:   "userdata <value>",
	Short: "Store a value in a user data holder and read it back",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserData,
}

func runArea(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry(cmd.Context())
	if err != nil {
		return outputError(cmd, "area", err)
	}

	kindName := args[0]
	dims, err := parseDims(args[1:])
	if err != nil {
		return outputError(cmd, "area", err)
	}

	shape, err := reg.Build(kindName, dims...)
	if err != nil {
		return outputError(cmd, "area", err)
	}

	kind, _ := reg.Lookup(kindName)
	params := make([]CLIParam, len(dims))
	for i, d := range dims {
		params[i] = CLIParam{Name: kind.Params[i], Value: d}
	}

	return outputResult(cmd, CLIResult{
		Command: "area",
		Results: CLIArea{
			Kind:   kindName,
			Params: params,
			Area:   Number(solid.ShapeArea(shape)),
		},
	})
}

func runKinds(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry(cmd.Context())
	if err != nil {
		return outputError(cmd, "kinds", err)
	}

	kinds := reg.Kinds()
	out := make([]CLIKind, len(kinds))
	for i, k := range kinds {
		params := k.Params
		if params == nil {
			params = []string{}
		}
		out[i] = CLIKind{Name: k.Name, Params: params}
	}
	return outputResult(cmd, CLIResult{Command: "kinds", Results: out})
}

func runUserData(cmd *cobra.Command, args []string) error {
	h := solid.NewUserDataHolder()
	h.SetUserData(args[0])
	return outputResult(cmd, CLIResult{
		Command: "userdata",
		Results: CLIUserData{UserData: h.UserData()},
	})
}

// parseDims converts positional dimension arguments to finite floats.
// Values that overflow float64, as well as NaN and Inf, are rejected.
func parseDims(args []string) ([]float64, error) {
	dims := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid dimension %q: %w", a, solid.ErrInvalidArgument)
		}
		dims[i] = v
	}
	return dims, nil
}
