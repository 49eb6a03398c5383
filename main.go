package main

import (
	"Jokerscore/config"
	"Jokerscore/logger"
	"Jokerscore/services/poker"
	"Jokerscore/utils"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = "usage: jokerscore [--explain] [--config file] [--log-level level] <round.yaml | ->"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("jokerscore", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	config.RegisterFlags(flags)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "jokerscore: %v\n", err)
		return 1
	}
	if err := logger.InitLogger(cfg.Log.Mode, cfg.Log.Level); err != nil {
		fmt.Fprintf(stderr, "jokerscore: invalid log level: %v\n", err)
		return 1
	}
	defer zap.L().Sync()

	round, result, err := scoreInput(flags.Arg(0), stdin)
	if err != nil {
		zap.L().Debug("round rejected", zap.String("input", flags.Arg(0)), zap.Error(err))
		fmt.Fprintf(stderr, "jokerscore: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, strconv.FormatFloat(result.Total(), 'f', -1, 64))

	if cfg.Explain {
		if err := renderExplain(stderr, round, result); err != nil {
			zap.L().Warn("could not render explanation", zap.Error(err))
		}
	}
	return 0
}

func scoreInput(path string, stdin io.Reader) (poker.Round, poker.Result, error) {
	data, err := utils.ReadInput(path, stdin)
	if err != nil {
		return poker.Round{}, poker.Result{}, err
	}

	round, err := poker.ParseRound(data)
	if err != nil {
		return poker.Round{}, poker.Result{}, err
	}
	zap.L().Debug("round loaded",
		zap.Int("played", len(round.CardsPlayed)),
		zap.Int("held", len(round.CardsHeldInHand)),
		zap.Int("jokers", len(round.Jokers)),
	)

	result, err := poker.Score(round)
	if err != nil {
		return round, poker.Result{}, err
	}
	return round, result, nil
}
