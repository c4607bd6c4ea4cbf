// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// execute loads the configuration, evaluates the job built by mk and writes
// the report to the command's output.
func execute(cmd *cobra.Command, v *viper.Viper, mk func(c config) (job, error)) error {
	c, err := loadConfig(v)
	if err != nil {
		return err
	}
	log, err := newLogger(c.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	j, err := mk(c)
	if err != nil {
		return err
	}
	rep, err := dispatch(cmd.Context(), c.Scalar, j, log.With(
		zap.String("command", cmd.Name()),
		zap.String("scalar", c.Scalar),
	))
	if err != nil {
		return err
	}

	return rep.write(cmd.OutOrStdout(), c.Output)
}

// optionalVector parses --vector when it was given.
func optionalVector(s string) (*[3]float64, error) {
	if s == "" {
		return nil, nil
	}
	vec, err := parseVector(s)
	if err != nil {
		return nil, err
	}

	return &vec, nil
}

func newRotateCmd(v *viper.Viper) *cobra.Command {
	var (
		axis   string
		angle  float64
		vector string
	)
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Print the rotation matrix about one axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, v, func(c config) (job, error) {
				a, err := parseAxis(axis)
				if err != nil {
					return job{}, err
				}
				if err := checkNumber(angle); err != nil {
					return job{}, err
				}
				vec, err := optionalVector(vector)
				if err != nil {
					return job{}, err
				}

				return job{
					steps:  []step{{axis: a, radians: toRadians(angle, c.Degrees)}},
					vector: vec,
				}, nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&axis, "axis", "", "rotation axis: x|y|z")
	f.Float64Var(&angle, "angle", 0, "rotation angle")
	f.StringVar(&vector, "vector", "", "vector to transform, x,y,z")
	_ = cmd.MarkFlagRequired("axis")

	return cmd
}

func newQuatCmd(v *viper.Viper) *cobra.Command {
	var (
		w, x, y, z float64
		normalize  bool
		vector     string
	)
	cmd := &cobra.Command{
		Use:   "quat",
		Short: "Print the rotation matrix of a quaternion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, v, func(config) (job, error) {
				q := [4]float64{w, x, y, z}
				for _, c := range q {
					if err := checkNumber(c); err != nil {
						return job{}, err
					}
				}
				vec, err := optionalVector(vector)
				if err != nil {
					return job{}, err
				}

				return job{quat: &q, normalize: normalize, vector: vec}, nil
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&w, "w", 1, "real component")
	f.Float64Var(&x, "x", 0, "i component")
	f.Float64Var(&y, "y", 0, "j component")
	f.Float64Var(&z, "z", 0, "k component")
	f.BoolVar(&normalize, "normalize", false, "normalize the quaternion first")
	f.StringVar(&vector, "vector", "", "vector to rotate with the quaternion, x,y,z")

	return cmd
}

func newComposeCmd(v *viper.Viper) *cobra.Command {
	var vector string
	cmd := &cobra.Command{
		Use:     "compose STEP...",
		Short:   "Multiply axis rotations left to right",
		Example: "  lvmath compose x:90 z:45 --vector 1,0,0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, v, func(c config) (job, error) {
				steps := make([]step, 0, len(args))
				for _, a := range args {
					s, err := parseStep(a, c.Degrees)
					if err != nil {
						return job{}, err
					}
					steps = append(steps, s)
				}
				vec, err := optionalVector(vector)
				if err != nil {
					return job{}, err
				}

				return job{steps: steps, vector: vec}, nil
			})
		},
	}
	cmd.Flags().StringVar(&vector, "vector", "", "vector to transform, x,y,z")

	return cmd
}
