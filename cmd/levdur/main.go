// Command levdur solves autocorrelation normal equations with the
// Levinson-Durbin recursion.
//
// It reads frames of order+1 little-endian float64 autocorrelation values
// from infile (stdin by default) and writes the same number of linear
// predictive coefficients per frame to stdout.
//
//	levdur [ -m M ] [ -f F ] [ -e E ] [ -g G ] [ -h ] [ infile ]
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

const name = "levdur"

const usage = ` levdur - solve an autocorrelation normal equation
          using Levinson-Durbin recursion

  usage:
       levdur [ options ] [ infile ] > stdout
  options:
       -m m  : order of autocorrelation         (   int)[%5d][   0 <= m <=   ]
       -f f  : minimum value of the determinant (double)[%5g][ 0.0 <= f <=   ]
               of normal matrix
       -e e  : warning type of unstable index   (   int)[%5d][   0 <= e <= 2 ]
                 0 (no warning)
                 1 (output the index to stderr)
                 2 (output the index to stderr
                    and exit immediately)
       -g g  : gain of output coefficients      (   int)[%5d][   0 <= g <= 1 ]
                 0 (unity)
                 1 (square root of prediction error energy)
       -h    : print this message
  infile:
       autocorrelation sequence                 (double)[stdin]
  stdout:
       linear predictive coefficients           (double)
`

// config is the validated command line.
type config struct {
	order   int
	epsilon float64
	policy  frameloop.WarningPolicy
	gain    lpc.GainMode
	input   string
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "\n"+usage+"\n", lpc.DefaultOrder, lpc.DefaultEpsilon, int(frameloop.Ignore), int(lpc.DefaultGain))
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

// parseArgs returns the configuration, or a non-negative exit code when the
// command must stop before processing any frame.
func parseArgs(args []string, stdout, stderr io.Writer, logger *log.Logger) (config, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	m := fs.String("m", strconv.Itoa(lpc.DefaultOrder), "order of autocorrelation")
	f := fs.String("f", strconv.FormatFloat(lpc.DefaultEpsilon, 'g', -1, 64), "minimum value of the determinant of normal matrix")
	e := fs.String("e", strconv.Itoa(int(frameloop.Ignore)), "warning type of unstable index")
	g := fs.String("g", strconv.Itoa(int(lpc.DefaultGain)), "gain of output coefficients")

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
	policy, err := strconv.Atoi(*e)
	if cfg.policy = frameloop.WarningPolicy(policy); err != nil || !cfg.policy.Valid() {
		logger.Print("The argument for the -e option must be an integer in the range of 0 to 2!")

		return config{}, 1
	}
	gain, err := strconv.Atoi(*g)
	if err != nil || (gain != int(lpc.UnityGain) && gain != int(lpc.FilterGain)) {
		logger.Print("The argument for the -g option must be an integer in the range of 0 to 1!")

		return config{}, 1
	}
	cfg.gain = lpc.GainMode(gain)

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

	ld, err := lpc.NewLevinsonDurbin(cfg.order, cfg.epsilon, lpc.WithGain(cfg.gain))
	if err != nil {
		logger.Print("Failed to set the condition!")

		return 1
	}
	src, err := source.NewStreamSource(in, cfg.order+1)
	if err != nil {
		logger.Print("Failed to set the condition!")

		return 1
	}

	err = frameloop.Forward(src, stream.NewWriter(stdout), ld, cfg.policy, logger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, frameloop.ErrUnstableFrame):
	case errors.Is(err, lpc.ErrSingular):
		logger.Print("Failed to solve autocorrelation normal equations!")
	case errors.Is(err, frameloop.ErrRead):
		logger.Print("Failed to read autocorrelation sequence!")
	case errors.Is(err, frameloop.ErrWrite):
		logger.Print("Failed to write linear predictive coefficients!")
	default:
		logger.Print(err)
	}

	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
