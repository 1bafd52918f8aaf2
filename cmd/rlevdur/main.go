// Command rlevdur recovers autocorrelation sequences from linear predictive
// coefficients with the reverse Levinson-Durbin recursion.
//
//	rlevdur [ -m M ] [ -f F ] [ -g G ] [ -h ] [ infile ]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/levinson/frameloop"
	"github.com/katalvlaran/levinson/lpc"
	"github.com/katalvlaran/levinson/source"
	"github.com/katalvlaran/levinson/stream"
)

const name = "rlevdur"

const usage = ` rlevdur - solve an autocorrelation normal equation
           using Reverse Levinson-Durbin recursion

  usage:
       rlevdur [ options ] [ infile ] > stdout
  options:
       -m m  : order of linear predictive coefficients (   int)[%5d][   0 <= m <=   ]
       -f f  : minimum value of the determinant of     (double)[%5g][ 0.0 <= f <=   ]
               normal matrix
       -g g  : gain of input coefficients              (   int)[%5d][   0 <= g <= 2 ]
                 0 (unity, prediction error energy 1)
                 1 (linear gain K = sqrt of energy)
                 2 (log gain ln K)
       -h    : print this message
  infile:
       linear predictive coefficients                  (double)[stdin]
  stdout:
       autocorrelation sequence                        (double)
`

// gainKinds maps the -g argument to the preprocessing of coefficient 0.
var gainKinds = []source.GainKind{source.UnityGain, source.LinearGain, source.LogGain}

type config struct {
	order   int
	epsilon float64
	gain    source.GainKind
	input   string
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "\n"+usage+"\n", lpc.DefaultOrder, lpc.DefaultEpsilon, 0)
}

// parseInterleaved parses flags found anywhere in args, as getopt does, and
// returns the positional arguments in order. Everything after "--" is
// positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func parseArgs(args []string, stdout, stderr io.Writer, logger *log.Logger) (config, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	m := fs.String("m", strconv.Itoa(lpc.DefaultOrder), "order of linear predictive coefficients")
	f := fs.String("f", strconv.FormatFloat(lpc.DefaultEpsilon, 'g', -1, 64), "minimum value of the determinant of normal matrix")
	g := fs.String("g", "0", "gain of input coefficients")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)

			return config{}, 0
		}
		logger.Print(err)
		printUsage(stderr)

		return config{}, 1
	}

	var cfg config
	if cfg.order, err = strconv.Atoi(*m); err != nil || cfg.order < 0 {
		logger.Print("The argument for the -m option must be a non-negative integer!")

		return config{}, 1
	}
	if cfg.epsilon, err = strconv.ParseFloat(*f, 64); err != nil || !(cfg.epsilon >= 0) {
		logger.Print("The argument for the -f option must be a non-negative number!")

		return config{}, 1
	}
	gain, err := strconv.Atoi(*g)
	if err != nil || gain < 0 || gain >= len(gainKinds) {
		logger.Printf("The argument for the -g option must be an integer in the range of 0 to %d!", len(gainKinds)-1)

		return config{}, 1
	}
	cfg.gain = gainKinds[gain]

	switch len(positional) {
	case 0:
	case 1:
		cfg.input = positional[0]
	default:
		logger.Print("Too many input files!")

		return config{}, 1
	}

	return cfg, -1
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, name+": ", 0)

	cfg, code := parseArgs(args, stdout, stderr, logger)
	if code >= 0 {
		return code
	}

	in := stdin
	if cfg.input != "" {
		file, err := os.Open(cfg.input)
		if err != nil {
			logger.Printf("Cannot open file %s!", cfg.input)

			return 1
		}
		defer file.Close()
		in = file
	}

	// Coefficient 0 always reaches the recursion as the linear gain K.
	rld, err := lpc.NewReverseLevinsonDurbin(cfg.order, cfg.epsilon, lpc.WithGain(lpc.FilterGain))
	if err != nil {
		logger.Print("Failed to set the condition!")

		return 1
	}
	raw, err := source.NewStreamSource(in, cfg.order+1)
	if err != nil {
		logger.Print("Failed to set the condition!")

		return 1
	}
	src, err := source.NewFilterGainSource(cfg.gain, raw)
	if err != nil {
		logger.Print("Failed to set the condition!")

		return 1
	}

	err = frameloop.Reverse(src, stream.NewWriter(stdout), rld, logger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, lpc.ErrUnstableLPC), errors.Is(err, lpc.ErrSingular):
		logger.Print("Failed to solve autocorrelation normal equations!")
	case errors.Is(err, frameloop.ErrRead):
		logger.Print("Failed to read linear predictive coefficients!")
	case errors.Is(err, frameloop.ErrWrite):
		logger.Print("Failed to write autocorrelation sequence!")
	default:
		logger.Print(err)
	}

	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
