// 23 Feb 2018
// read a substitution matrix
// 6 Oct 2026 reads from an io.Reader, collects all the bad lines
// instead of stopping at the first, hands out an align.Model.

// Package submat reads substitution matrices in the format used by
// BLAST and friends. After comments, the first line lists the symbols,
// one character each. It is followed by one row per symbol, which starts
// with the symbol and then has one number per column.
package submat

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/errors"
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/hirschberg/pkg/align"
)

// Submat is the export type. it internals do not have to be exported.
type Submat struct {
	mat  *matrix.FMatrix2d
	syms []byte // symbols in the order of the header line
	cmap [128]int8
}

const notset int8 = -1

// ErrUnknown is returned for a symbol that is not in the matrix.
var ErrUnknown = errors.New("unknown symbol")

const cmmtChar = '#'

//go:embed blosum62.txt
var blosum62 []byte

// Blosum62 returns the BLOSUM62 matrix, with 24 symbols in the order
// ARNDCQEGHILKMFPSTWYVBZX*.
func Blosum62() (*Submat, error) {
	return ReadFrom(bytes.NewReader(blosum62))
}

// String prints out a substitution matrix. Useful during debugging.
func (submat *Submat) String() (s string) {
	s = "Mapping\n"
	n := 10
	for i, ndx := range submat.cmap {
		if ndx != notset {
			s = s + fmt.Sprintf("%4s%4d", string(rune(i)), ndx)
			n--
			if n == 0 {
				n = 10
				s = s + "\n"
			}
		}
	}
	s += "\nThe matrix\n"
	s += fmt.Sprintf("%4s", " ")
	for _, c := range submat.syms {
		s += fmt.Sprintf("%4s", string(c))
	}
	s += "\n"
	for i, c := range submat.syms {
		s += fmt.Sprintf("%4s", string(c))
		for j := range submat.syms {
			s += fmt.Sprintf("%4.0f", submat.mat.Mat[i][j])
		}
		s += "\n"
	}
	return s
}

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	*bufio.Scanner
	cmmt byte // Comment character
	nline int
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	return &CmmtScanner{Scanner: bufio.NewScanner(r), cmmt: cmmt}
}

// Next moves to the next line with something on it and returns it.
// Before returning, we remove anything after the comment symbol and
// strip leading and trailing white space.
// Like the Bytes function, this works directly in the i/o buffer
// and does not allocate any memory. If you like the slice it returns,
// you have to save it somewhere. At the end of input it returns nil.
func (s *CmmtScanner) Next() []byte {
	for s.Scan() {
		s.nline++
		b := s.Bytes()
		if i := bytes.IndexByte(b, s.cmmt); i != -1 {
			b = b[:i]
		}
		if b = bytes.TrimSpace(b); len(b) > 0 {
			return b
		}
	}
	return nil
}

// Line is the number of the line Next last returned, counting from 1.
func (s *CmmtScanner) Line() int { return s.nline }

// The first non-comment line  of the substitution matrix file
// contains a list of the allowed characters. Each field has to be
// one character long
func (submat *Submat) alfbtLine(inline []byte) error {
	cmap := submat.cmap[:]
	for i := range cmap {
		cmap[i] = notset
	}
	f := bytes.Fields(inline)
	if len(f) > 127 {
		return fmt.Errorf("alphabet line has %d symbols, too many", len(f))
	}
	for i, c := range f {
		if len(c) != 1 {
			return errors.New("alphabet line: expected a single character, got " + string(c))
		}
		if c[0] >= 128 {
			return errors.New("alphabet line: saw a non-ascii character in " + string(inline))
		}
		if cmap[c[0]] != notset {
			return fmt.Errorf("alphabet line: %q appears twice", c[0])
		}
		cmap[c[0]] = int8(i)
		submat.syms = append(submat.syms, c[0])
	}
	for i, c := range f { // If not set, set both upper and lower case
		l := (bytes.ToLower(c))[0] // This is safe, since we have checked
		u := (bytes.ToUpper(c))[0] // that c is one-byte long
		if cmap[l] == notset {     // Lower case index
			cmap[l] = int8(i)
		}
		if cmap[u] == notset { //     Corresponding upper case index
			cmap[u] = int8(i)
		}
	}
	return nil
}

// row reads one line of numbers into the matrix. seen stops a symbol
// from turning up twice.
func (submat *Submat) row(line []byte, seen []bool) error {
	nAlfbt := len(submat.syms)
	fields := bytes.Fields(line)
	if len(fields) != nAlfbt+1 {
		return fmt.Errorf("wrong number of items, wanted %d got %d", nAlfbt+1, len(fields))
	}
	if len(fields[0]) != 1 || fields[0][0] >= 128 {
		return fmt.Errorf("invalid row symbol %q", fields[0])
	}
	c := fields[0][0]
	i := submat.header(c)
	if i == -1 {
		return fmt.Errorf("row symbol %q is not on the alphabet line", c)
	}
	if seen[i] {
		return fmt.Errorf("second row for %q", c)
	}
	seen[i] = true
	for j, s := range fields[1:] {
		f, err := strconv.ParseFloat(string(s), 32)
		if err != nil {
			return err
		}
		submat.mat.Mat[i][j] = float32(f)
	}
	return nil
}

// header returns the column of c on the alphabet line, without
// falling back to the other case.
func (submat *Submat) header(c byte) int {
	for i, s := range submat.syms {
		if s == c {
			return i
		}
	}
	return -1
}

// Read will read a substitution matrix from a filename.
// Return a pointer to a Submat structure.
func Read(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	submat, err := ReadFrom(fp)
	if err != nil {
		return nil, fmt.Errorf("reading from %s: %w", fname, err)
	}
	return submat, nil
}

// ReadFrom reads a substitution matrix from rdr. Every broken row is
// reported, not just the first.
func ReadFrom(rdr io.Reader) (*Submat, error) {
	submat := new(Submat)
	scnr := NewCmmtScanner(rdr, cmmtChar)
	first := scnr.Next()
	if first == nil {
		if err := scnr.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("no alphabet line found")
	}
	if err := submat.alfbtLine(first); err != nil {
		return nil, err
	}
	nAlfbt := len(submat.syms)
	submat.mat = matrix.NewFMatrix2d(nAlfbt, nAlfbt)
	seen := make([]bool, nAlfbt)
	errs := errors.M{}
	for line := scnr.Next(); line != nil; line = scnr.Next() {
		if err := submat.row(line, seen); err != nil {
			errs.Append(fmt.Errorf("line %d: %w", scnr.Line(), err))
		}
	}
	errs.Append(scnr.Err())
	for i, ok := range seen {
		if !ok {
			errs.Append(fmt.Errorf("no row for %q", submat.syms[i]))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return submat, nil
}

// Score returns the similarity score of bytes a and b, given
// a specific scoring matrix. It is an error if either is not in the
// matrix.
func (submat *Submat) Score(a, b byte) (float32, error) {
	if !submat.Has(a) {
		return 0, fmt.Errorf("%w %q", ErrUnknown, a)
	}
	if !submat.Has(b) {
		return 0, fmt.Errorf("%w %q", ErrUnknown, b)
	}
	return submat.mat.Mat[submat.cmap[a]][submat.cmap[b]], nil
}

// Has says if c can be scored.
func (submat *Submat) Has(c byte) bool {
	return c < 128 && submat.cmap[c] != notset
}

// Symbols returns the symbols in the order of the rows.
func (submat *Submat) Symbols() []byte {
	return bytes.Clone(submat.syms)
}

// Dim is the number of rows and columns.
func (submat *Submat) Dim() int { return len(submat.syms) }

// Check finds the first symbol in s that the matrix cannot score.
func (submat *Submat) Check(s []byte) error {
	for i, c := range s {
		if !submat.Has(c) {
			return fmt.Errorf("%w %q at position %d", ErrUnknown, c, i)
		}
	}
	return nil
}

// SelfScore is the score of s aligned with itself, the best any
// partner can do against s when the matrix has its largest values on
// the diagonal.
func (submat *Submat) SelfScore(s []byte) (float32, error) {
	var sum float32
	for _, c := range s {
		f, err := submat.Score(c, c)
		if err != nil {
			return 0, err
		}
		sum += f
	}
	return sum, nil
}

// Model gives the matrix to the aligner. Only the symbols from the
// alphabet line are in the map, so sequences should be in the same case
// as the file. The matrix is shared, not copied.
func (submat *Submat) Model(gap float32) *align.Model[byte, float32] {
	index := make(map[byte]int, len(submat.syms))
	for i, c := range submat.syms {
		index[c] = i
	}
	return &align.Model[byte, float32]{Matrix: submat.mat.Mat, Index: index, Gap: gap}
}

// Normalize rewrites s in place so every symbol the matrix knows is
// spelt the way the alphabet line spells it ('k' becomes 'K' for
// BLOSUM62). Symbols the matrix does not know are left alone for the
// aligner to complain about.
func (submat *Submat) Normalize(s []byte) {
	for i, c := range s {
		if submat.Has(c) {
			s[i] = submat.syms[submat.cmap[c]]
		}
	}
}
