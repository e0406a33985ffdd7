package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

func main() {
	if err := mainFunc(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Failed: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string, verbose bool) (*zap.Logger, error) {
	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{path}
	if !verbose {
		logcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return logcfg.Build()
}

func mainFunc(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("lspdemo", pflag.ContinueOnError)
	fixture := flags.StringP("fixture", "f", "", "Path to YAML fixture (builtin data if empty)")
	logPath := flags.StringP("log", "l", "stderr", "Log output path")
	verbose := flags.BoolP("verbose", "v", false, "Debug logging")
	dump := flags.Bool("dump", false, "Print the effective fixture as YAML and exit")
	if err := flags.Parse(args); err != nil {
		if xerrors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return xerrors.Errorf("flags: %w", err)
	}

	logger, err := newLogger(*logPath, *verbose)
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	fx, err := LoadFixture(*fixture)
	if err != nil {
		return xerrors.Errorf("fixture: %w", err)
	}
	sl.Debugf("Loaded fixture %q", *fixture)

	stdout := bufio.NewWriter(out)
	if *dump {
		contents, err := fx.Marshal()
		if err != nil {
			return xerrors.Errorf("fixture: %w", err)
		}
		if _, err := stdout.Write(contents); err != nil {
			return xerrors.Errorf("dump: %w", err)
		}
	} else if err := Run(stdout, fx, sl); err != nil {
		return xerrors.Errorf("run: %w", err)
	}
	if err := stdout.Flush(); err != nil {
		return xerrors.Errorf("flush: %w", err)
	}
	return nil
}
