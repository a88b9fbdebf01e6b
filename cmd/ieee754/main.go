// Command ieee754 prints the IEEE 754 double-precision bit pattern of decimal values.
//
// Usage:
//
//	ieee754 [--config file] [-v] [--] [value ...]
//
// With no values it prints the encoding of 3.14.
// Negative values must follow "--" so they are not read as flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/stewi1014/ieee754"
	"github.com/stewi1014/ieee754/encio"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain runs the command and returns the process exit status.
func realMain(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "ieee754",
		Usage:     "print the IEEE 754 double-precision bits of decimal values",
		ArgsUsage: "[--] [value ...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config `file`",
			},
			&cli.BoolFlag{
				Name:  "v",
				Usage: "debug logging",
			},
		},
		// Exit statuses are returned from realMain instead.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			cfg := DefaultConfig()
			if path := c.String("config"); path != "" {
				var err error
				cfg, err = LoadConfig(path)
				if err != nil {
					return fail(newLogger(zerolog.InfoLevel, stderr), err, "loading config", "path", path)
				}
			}

			level, err := cfg.Level()
			if err != nil {
				return fail(newLogger(zerolog.InfoLevel, stderr), err, "reading log level")
			}
			if c.Bool("v") {
				level = zerolog.DebugLevel
			}
			log := newLogger(level, stderr)

			if c.NArg() > 0 {
				values, err := parseValues(c.Args().Slice())
				if err != nil {
					return fail(log, err, "parsing values")
				}
				cfg.Values = values
			}

			if err := run(log, cfg, stdout); err != nil {
				return fail(log, err, "encoding")
			}
			return nil
		},
	}
}

func newLogger(level zerolog.Level, w io.Writer) logr.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02T15:04:05.000Z07:00"}
	zlog := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zlog).WithName("ieee754")
}

// fail logs err and returns it as a status 1 exit.
func fail(log logr.Logger, err error, msg string, keysAndValues ...interface{}) error {
	log.Error(err, msg, keysAndValues...)
	return cli.Exit(err, 1)
}

// parseValues parses decimal arguments. NaN, Inf and -0 are accepted.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, encio.NewError(encio.ErrMalformed, err.Error(), "parseValues")
		}
		values[i] = v
	}
	return values, nil
}

// run writes one line per configured value to stdout, or to cfg.Output when set.
func run(log logr.Logger, cfg *Config, stdout io.Writer) (err error) {
	out := stdout
	if cfg.Output != "" {
		f, cerr := os.Create(cfg.Output)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		out = f
		log.V(1).Info("writing to file", "path", cfg.Output)
	}

	prefix := defaultPrefix
	if cfg.Prefix != nil {
		prefix = *cfg.Prefix
	}

	enc := ieee754.NewEncoder(out, ieee754.WithPrefix(prefix))
	for _, v := range cfg.Values {
		log.V(1).Info("encoding", "value", v)
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	log.V(1).Info("done", "count", len(cfg.Values))
	return nil
}
