// 12 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/hirschberg/pkg/hbcmd"
)

func main() {
	os.Exit(hbcmd.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
