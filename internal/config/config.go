// Package config binds ropseq command flags to environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	prefix = "ROPSEQ"

	Input    = "input"
	Mode     = "mode"
	LogLevel = "log-level"
)

// Config holds the resolved ropseq settings.
type Config struct {
	Input    string
	Mode     string
	LogLevel string
}

// Load resolves the command flags, letting ROPSEQ_<FLAG> environment variables
// fill in flags that were not set on the command line.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return Config{}, err
	}

	return Config{
		Input:    v.GetString(Input),
		Mode:     v.GetString(Mode),
		LogLevel: v.GetString(LogLevel),
	}, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}
