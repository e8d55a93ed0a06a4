// 31 July 2020
// 4 Oct 2026 alphabets are passed in and every function takes its own
// random source, so tests can repeat themselves.

// Package randseq makes random sequences for testing. Sequences can be
// returned as byte slices or written out as records with an id that
// pkg/seq can read back.
package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

// Alphabets for New and Mutate.
var (
	Protein = []byte("ACDEFGHIKLMNPQRSTVWY")
	DNA     = []byte("ACGT")
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// New returns a random sequence of length n drawn from alfbt.
func New(alfbt []byte, n int, rnd *rand.Rand) []byte {
	s := make([]byte, n)
	l := len(alfbt)
	for i := range s {
		s[i] = alfbt[rnd.Intn(l)]
	}
	return s
}

// distinct counts the different symbols in alfbt.
func distinct(alfbt []byte) int {
	var seen [256]bool
	n := 0
	for _, c := range alfbt {
		if !seen[c] {
			seen[c] = true
			n++
		}
	}
	return n
}

// Mutate changes about frac of the sites in s, in place, to something
// else from alfbt. It returns the number of sites changed. With fewer
// than two different symbols there is nothing to change to, so nothing
// is changed.
func Mutate(alfbt []byte, frac float64, s []byte, rnd *rand.Rand) int {
	if distinct(alfbt) < 2 {
		return 0
	}
	n := 0
	for i, c := range s {
		if rnd.Float64() >= frac {
			continue
		}
		for t := c; t == c; {
			t = alfbt[rnd.Intn(len(alfbt))]
			s[i] = t
		}
		n++
	}
	return n
}

// DelN removes n sites at random. The result shares memory with s.
func DelN(n int, s []byte, rnd *rand.Rand) ([]byte, error) {
	if n > len(s) {
		return s, errors.New("DelN: asked to delete " + fmt.Sprint(n) + " from " + fmt.Sprint(len(s)))
	}
	for ; n > 0; n-- {
		i := rnd.Intn(len(s))
		s = append(s[:i], s[i+1:]...)
	}
	return s, nil
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Alfbt []byte    // symbols to use, Protein if nil
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Blank bool      // Add blank lines between sequence lines
}

// getseq returns a byte slice with a random sequence in it and room at
// the end for the white space addspace will put in.
func getseq(alfbt []byte, seqlen int, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	copy(ret, New(alfbt, seqlen, rnd))
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines. With blank set, every newline is doubled.
func addspace(s []byte, blank bool, rnd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	nl := byte('\n')
	s = addInner(s, nNL, nl, rnd)
	if !blank {
		return s
	}
	t := make([]byte, 0, len(s)+nNL)
	for _, c := range s {
		t = append(t, c)
		if c == nl {
			t = append(t, nl)
		}
	}
	return t
}

// writeseq takes a bytestring which is our sequence. It adds a header
// and writes it out. n is the number of the sequence, so the
// output has header lines ">r|1| something, >r|2| something..."
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // drain, so the sender does not block
		}
		s = addspace(s, args.Blank, spacernd)
		hdr := fmt.Sprintf(">r|%d| %s\n", i, args.Cmmt)
		if _, err := io.WriteString(args.Wrtr, hdr); err != nil {
			*errp = err
			continue
		}
		if _, err := args.Wrtr.Write(append(s, '\n')); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	alfbt := args.Alfbt
	if alfbt == nil {
		alfbt = Protein
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		sChan <- getseq(alfbt, args.Len, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
