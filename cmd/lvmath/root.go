// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName   = "lvmath"
	version   = "v0.1.0"
	envPrefix = "LVMATH"
)

// Configuration keys; each is also a persistent flag and an LVMATH_* variable.
const (
	keyScalar   = "scalar"
	keyDegrees  = "degrees"
	keyOutput   = "output"
	keyLogLevel = "log-level"
)

// config is the effective configuration after flags, environment and file.
type config struct {
	Scalar   string
	Degrees  bool
	Output   string
	LogLevel string
}

// newRootCmd builds the command tree around a private viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Rotation matrices over float64, float32 or fixed-point decimal scalars",
		Long: `lvmath builds 3x3 rotation matrices from axis angles or quaternions
and prints them, optionally together with a transformed vector. Every
computation runs through the same generic code for each scalar
representation, so results can be compared across precisions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String(keyScalar, scalarFloat64, "scalar representation: float64|float32|decimal")
	pf.Bool(keyDegrees, true, "angles are in degrees (false: radians)")
	pf.StringP(keyOutput, "o", outputText, "output format: text|yaml")
	pf.String(keyLogLevel, "warn", "log level: debug|info|warn|error")
	_ = v.BindPFlags(pf)

	cmd.AddCommand(newRotateCmd(v), newQuatCmd(v), newComposeCmd(v))

	return cmd
}

// initConfig wires environment variables and the optional config file.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	return nil
}

// loadConfig reads and validates the effective configuration.
func loadConfig(v *viper.Viper) (config, error) {
	c := config{
		Scalar:   strings.ToLower(v.GetString(keyScalar)),
		Degrees:  v.GetBool(keyDegrees),
		Output:   strings.ToLower(v.GetString(keyOutput)),
		LogLevel: v.GetString(keyLogLevel),
	}
	switch c.Scalar {
	case scalarFloat64, scalarFloat32, scalarDecimal:
	default:
		return config{}, fmt.Errorf("%w: %q", ErrUnknownScalar, c.Scalar)
	}
	switch c.Output {
	case outputText, outputYAML:
	default:
		return config{}, fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}

	return c, nil
}

// newLogger builds a production zap logger writing to stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	return cfg.Build(zap.Fields(zap.String("app", appName)))
}
