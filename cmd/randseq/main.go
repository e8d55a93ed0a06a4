// 31 July 2020
// 19 Oct 2026 everything after main() is in pkg/randseq

package main

import (
	"os"

	"github.com/andrew-torda/hirschberg/pkg/randseq"
)

func main() {
	os.Exit(randseq.Main(os.Args[1:], os.Stdout, os.Stderr))
}
