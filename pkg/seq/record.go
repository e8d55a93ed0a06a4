// 5 Oct 2026

// Package seq reads the sequence records the aligner works on.
//
// A line starting with '>' opens a record. The record id is the text
// between the first and second '|' on that line, so
//
//	>sp|P69905|HBA_HUMAN Hemoglobin subunit alpha
//
// has the id P69905. Every following line, up to the next '>' or the end
// of input, is part of the sequence. White space is dropped and blank
// lines are ignored.
package seq

import (
	"errors"
	"strings"
)

const (
	Marker  = '>' // starts a record
	IDDelim = '|' // brackets the id on the marker line
)

var (
	ErrNoRecords  = errors.New("seq: no records found")
	ErrNotPair    = errors.New("seq: expected exactly two records")
	ErrOrphanLine = errors.New("seq: sequence data before the first '>' line")
)

// Record is one entry. Header is the marker line without the '>'.
type Record struct {
	ID     string
	Header string
	Seq    []byte
}

// idFromHeader takes the text between the first and second IDDelim.
// With only one delimiter the id runs to the end of the line and with
// none it is the whole header.
func idFromHeader(hdr string) string {
	i := strings.IndexByte(hdr, IDDelim)
	if i == -1 {
		return strings.TrimSpace(hdr)
	}
	rest := hdr[i+1:]
	if j := strings.IndexByte(rest, IDDelim); j != -1 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}
