package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/seqkit/internal/seqcli"
)

type Config struct {
	LogLevel string `env:"SEQKIT_LOG_LEVEL" default:"info" enum:"debug,info,warn,error,"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// NewLogger creates the application logger.
// Logs go to STDERR, STDOUT is reserved for the command output.
func NewLogger(c Config) *logging.Logger {
	return &logging.Logger{
		Out:   os.Stderr,
		Level: logging.Level(c.LogLevel),
	}
}

func main() {
	c, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "seqkit"))
	cli.Main(ctx, seqcli.NewMux(NewLogger(c)))
}
