// 5 Oct 2026

package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Lines can be very long if someone puts a genome on one line.
const maxLine = 1 << 28

type lexer struct {
	scnr *bufio.Scanner
	recs []Record
	line []byte
	err  error
}

type stateFn func(*lexer) stateFn

// isWhite is only for ascii.
func isWhite(c byte) bool {
	var asciiSpace = [256]bool{
		'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	}
	return asciiSpace[c]
}

// appendNoWhite appends src to dst, leaving out white space.
func appendNoWhite(dst, src []byte) []byte {
	for _, c := range src {
		if !isWhite(c) {
			dst = append(dst, c)
		}
	}
	return dst
}

// next moves to the next line that is not blank.
func (l *lexer) next() bool {
	for l.scnr.Scan() {
		if b := bytes.TrimSpace(l.scnr.Bytes()); len(b) > 0 {
			l.line = l.scnr.Bytes()
			return true
		}
	}
	return false
}

// gstart is before the first record. Only a marker line is allowed.
func gstart(l *lexer) stateFn {
	if !l.next() {
		return nil
	}
	if l.line[0] != Marker {
		l.err = ErrOrphanLine
		return nil
	}
	return gheader
}

// gheader is sitting on a marker line.
func gheader(l *lexer) stateFn {
	hdr := string(bytes.TrimRight(l.line[1:], "\r"))
	l.recs = append(l.recs, Record{ID: idFromHeader(hdr), Header: hdr})
	return gbody
}

// gbody collects sequence lines until the next marker.
func gbody(l *lexer) stateFn {
	rec := &l.recs[len(l.recs)-1]
	for l.next() {
		if l.line[0] == Marker {
			return gheader
		}
		rec.Seq = appendNoWhite(rec.Seq, l.line)
	}
	return nil
}

// ReadRecords reads every record from rdr.
func ReadRecords(rdr io.Reader) ([]Record, error) {
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 64*1024), maxLine)
	l := lexer{scnr: scnr}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("seq: reading: %w", err)
	}
	if len(l.recs) == 0 {
		return nil, ErrNoRecords
	}
	return l.recs, nil
}

// ReadFile maps fname into memory and reads the records from it.
// Nothing returned points into the mapping.
func ReadFile(fname string) (recs []Record, err error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map an empty file
		return nil, fmt.Errorf("%s: %w", fname, ErrNoRecords)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("seq: mapping %s: %w", fname, err)
	}
	defer func() {
		if e := mm.Unmap(); e != nil && err == nil {
			err = e
		}
	}()
	if recs, err = ReadRecords(bytes.NewReader(mm)); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return recs, nil
}

// ReadPair reads exactly two records.
func ReadPair(rdr io.Reader) (Record, Record, error) {
	recs, err := ReadRecords(rdr)
	if err != nil {
		return Record{}, Record{}, err
	}
	if len(recs) != 2 {
		return Record{}, Record{}, fmt.Errorf("%w, got %d", ErrNotPair, len(recs))
	}
	return recs[0], recs[1], nil
}
