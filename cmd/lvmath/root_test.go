// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execRoot runs the command tree with args and returns its stdout.
func execRoot(ctx context.Context, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(ctx)

	return out.String(), err
}

// yamlReport mirrors report for decoding.
type yamlReport struct {
	Scalar string      `yaml:"scalar"`
	Matrix [][]float64 `yaml:"matrix"`
	Vector []float64   `yaml:"vector"`
}

func decodeReport(t *testing.T, s string) yamlReport {
	t.Helper()
	var r yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(s), &r), "output:\n%s", s)

	return r
}

func TestCLI_QuatIdentityText(t *testing.T) {
	t.Parallel()

	out, err := execRoot(context.Background(), "quat")
	require.NoError(t, err)
	require.Equal(t, "[1 0 0]\n[0 1 0]\n[0 0 1]\n", out)
}

func TestCLI_RotateYAML(t *testing.T) {
	t.Parallel()

	out, err := execRoot(context.Background(), "rotate", "--axis", "z", "--angle", "90", "--vector", "1,0,0", "-o", "yaml")
	require.NoError(t, err)

	r := decodeReport(t, out)
	require.Equal(t, scalarFloat64, r.Scalar)
	require.Len(t, r.Matrix, 3)
	require.InDelta(t, -1, r.Matrix[0][1], 1e-15)
	require.InDelta(t, 1, r.Matrix[1][0], 1e-15)
	require.Len(t, r.Vector, 3)
	require.InDelta(t, 0, r.Vector[0], 1e-15)
	require.InDelta(t, 1, r.Vector[1], 1e-15)
}

func TestCLI_ComposeDecimal(t *testing.T) {
	t.Parallel()

	out, err := execRoot(context.Background(), "compose", "x:90", "z:90", "--scalar", "decimal", "-o", "yaml", "--vector", "0,1,0")
	require.NoError(t, err)
	require.Contains(t, out, "1.000000000000000000")

	r := decodeReport(t, out)
	require.Equal(t, scalarDecimal, r.Scalar)
	// Rx(90)·Rz(90)·(0,1,0) = Rx(90)·(-1,0,0) = (-1,0,0).
	require.InDelta(t, -1, r.Vector[0], 1e-15)
	require.InDelta(t, 0, r.Vector[1], 1e-15)
	require.InDelta(t, 0, r.Vector[2], 1e-15)
}

func TestCLI_Radians(t *testing.T) {
	t.Parallel()

	out, err := execRoot(context.Background(), "rotate", "--axis", "x", "--angle", "3.141592653589793", "--degrees=false", "-o", "yaml")
	require.NoError(t, err)
	r := decodeReport(t, out)
	require.InDelta(t, -1, r.Matrix[1][1], 1e-15)
	require.InDelta(t, -1, r.Matrix[2][2], 1e-15)
}

func TestCLI_Aborted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := execRoot(ctx, "compose", "x:10", "y:20")
	require.ErrorIs(t, err, ErrAborted)
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"scalar", []string{"quat", "--scalar", "float16"}, ErrUnknownScalar},
		{"output", []string{"quat", "-o", "json"}, ErrUnknownOutput},
		{"axis", []string{"rotate", "--axis", "q"}, ErrInvalidAxis},
		{"vector", []string{"rotate", "--axis", "x", "--vector", "1,2"}, ErrInvalidVector},
		{"step", []string{"compose", "x90"}, ErrInvalidStep},
		{"zero quaternion", []string{"quat", "--w", "0", "--normalize"}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := execRoot(context.Background(), tc.args...)
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}

	_, err := execRoot(context.Background(), "compose")
	require.Error(t, err, "compose needs at least one step")
	_, err = execRoot(context.Background(), "rotate")
	require.Error(t, err, "rotate needs --axis")
}

func TestCLI_Environment(t *testing.T) {
	t.Setenv("LVMATH_SCALAR", "float32")
	t.Setenv("LVMATH_OUTPUT", "yaml")

	out, err := execRoot(context.Background(), "quat")
	require.NoError(t, err)
	require.Equal(t, scalarFloat32, decodeReport(t, out).Scalar)

	// Flags win over the environment.
	out, err = execRoot(context.Background(), "quat", "--scalar", "decimal")
	require.NoError(t, err)
	require.Equal(t, scalarDecimal, decodeReport(t, out).Scalar)
}

func TestCLI_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lvmath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scalar: decimal\noutput: yaml\ndegrees: false\n"), 0o600))

	out, err := execRoot(context.Background(), "--config", path, "rotate", "--axis", "y", "--angle", "0")
	require.NoError(t, err)
	r := decodeReport(t, out)
	require.Equal(t, scalarDecimal, r.Scalar)
	require.Equal(t, []float64{1, 0, 0}, r.Matrix[0])

	_, err = execRoot(context.Background(), "--config", filepath.Join(t.TempDir(), "missing.yaml"), "quat")
	require.Error(t, err)
}
