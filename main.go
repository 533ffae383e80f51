package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/meghashyamc/vec2d/calc"
	"github.com/meghashyamc/vec2d/config"
	"github.com/meghashyamc/vec2d/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// A missing .env file is fine, real env vars and the config file still apply
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("vec2d", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	// operands such as -1,2 must not be read as flags
	flags.SetInterspersed(false)
	env := flags.String("env", "", "config environment, selects config/config.<env>.yaml")
	flags.Int("precision", -1, "digits after the decimal point, -1 for shortest")
	flags.String("format", calc.FormatText, "output format: text or json")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: vec2d [flags] <operation> [operands...]\n\noperations:\n  %s\n\nflags:\n", strings.Join(calc.Operations(), "\n  "))
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*env)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %s\n", err)
		return exitError
	}
	if err := cfg.BindFlags(flags); err != nil {
		fmt.Fprintf(stderr, "failed to load config: %s\n", err)
		return exitError
	}

	log := logger.NewWithWriter(stderr, cfg.GetLogLevel())
	log.Debug("config loaded", "format", cfg.GetOutputFormat(), "precision", cfg.GetPrecision())

	operation, operands := flags.Arg(0), flags.Args()[1:]
	result, err := calc.New(log).Evaluate(operation, operands)
	if err != nil {
		log.Error("error evaluating operation", "operation", operation, "err", err)
		return exitError
	}

	if err := calc.Write(stdout, result, cfg.GetOutputFormat(), cfg.GetPrecision()); err != nil {
		log.Error("error writing result", "err", err)
		return exitError
	}

	return exitOK
}
