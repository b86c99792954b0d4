// Command vebdemo inserts a shuffled permutation of [0, n) into a van Emde
// Boas tree and prints the elements back in order by walking successors.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/jrhy/veb"
	"github.com/sirupsen/logrus"
)

const maxElements = 1 << 20

func main() {
	log := logrus.New()
	log.Out = os.Stderr
	err := run(os.Args[1:], os.Stdout, log)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, log *logrus.Logger) error {
	flags := flag.NewFlagSet("vebdemo", flag.ContinueOnError)
	flags.SetOutput(log.Out)
	bits := flags.Uint("bits", 0, "universe exponent t, for the universe [0, 2^t); 0 fits it to -n")
	n := flags.Uint64("n", 16, "number of elements to insert")
	seed := flags.Int64("seed", 1, "shuffle seed")
	verbose := flags.Bool("v", false, "trace insertions and validate after each")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if *verbose {
		log.Level = logrus.DebugLevel
	}

	if *n == 0 || *n > maxElements {
		return fmt.Errorf("-n must be between 1 and %d", maxElements)
	}
	if *bits > veb.MaxUniverseBits {
		return fmt.Errorf("-bits must be at most %d", veb.MaxUniverseBits)
	}
	t := uint8(*bits)
	if t == 0 {
		t = veb.BitsFor(*n - 1)
	}

	tr, err := veb.NewWithOptions(&veb.Options{
		UniverseBits: t,
		Logger:       log,
		Debug:        *verbose,
	})
	if err != nil {
		return fmt.Errorf("new tree: %w", err)
	}

	perm := rand.New(rand.NewSource(*seed)).Perm(int(*n))
	for _, x := range perm {
		err = tr.Insert(uint64(x))
		if err != nil {
			return fmt.Errorf("%w; use a larger -bits", err)
		}
	}

	for x, ok := tr.Minimum(); ok; x, ok = tr.Successor(x) {
		fmt.Fprintln(out, x)
	}

	log.WithFields(logrus.Fields{
		"bits":   tr.UniverseBits(),
		"size":   tr.Size(),
		"digest": tr.DigestString(),
	}).Info("done")
	return nil
}
