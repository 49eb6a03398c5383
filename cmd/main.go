// Command deal prints a random round document that jokerscore can read.
package main

import (
	"Jokerscore/logger"
	"Jokerscore/services/poker"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type dealOptions struct {
	Seed   int64
	Played int
	Held   int
	Jokers []string
	Best   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts dealOptions
	flags := pflag.NewFlagSet("deal", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "shuffle seed")
	flags.IntVar(&opts.Played, "played", 5, "cards to play (1-5)")
	flags.IntVar(&opts.Held, "held", 3, "cards left in hand")
	flags.StringSliceVar(&opts.Jokers, "joker", nil, "joker to add, repeatable (e.g. --joker \"Jolly Joker Foil\")")
	flags.BoolVar(&opts.Best, "best", false, "play the highest-scoring cards of the deal instead of the first ones")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := logger.InitLogger("development", "warn"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer zap.L().Sync()

	data, err := deal(opts)
	if err != nil {
		fmt.Fprintf(stderr, "deal: %v\n", err)
		return 1
	}
	stdout.Write(data)
	return 0
}

// deal shuffles a standard deck with the seed and deals a round from it.
// With Best the played cards are the highest-scoring choice among all dealt cards.
func deal(opts dealOptions) ([]byte, error) {
	round := poker.Round{}
	for _, name := range opts.Jokers {
		joker, err := poker.ParseJokerCard(name)
		if err != nil {
			return nil, err
		}
		round.Jokers = append(round.Jokers, joker)
	}

	if opts.Played < 0 || opts.Held < 0 || opts.Played+opts.Held > 52 {
		return nil, fmt.Errorf("cannot deal %d + %d cards from one deck", opts.Played, opts.Held)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	deck := poker.NewStandardDeck()
	deck.Shuffle(rng)
	cards := deck.Draw(rng, opts.Played+opts.Held)
	if opts.Best {
		best, _, err := poker.BestPlay(cards, round.Jokers, opts.Played)
		if err != nil {
			return nil, err
		}
		round = best
	} else {
		round.CardsPlayed = cards[:opts.Played]
		round.CardsHeldInHand = cards[opts.Played:]
	}

	if err := round.Validate(); err != nil {
		return nil, err
	}
	zap.L().Debug("dealt round", zap.Int64("seed", opts.Seed), zap.Stringers("played", round.CardsPlayed))

	return round.ToYAML()
}
