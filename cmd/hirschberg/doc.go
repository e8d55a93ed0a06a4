// 12 Oct 2026

/*
Hirschberg aligns two sequences with a linear space version of the
Needleman-Wunsch algorithm.

Usage:

	hirschberg [flags]

The input has exactly two records, each starting with a '>' line. If the
line looks like ">sp|P69905|HBA_HUMAN", the id is the bit between the
bars. The output is the symbols of the first sequence that are matched to
the second, on one line, followed by

	Score: 2606

Flags:

	-m, --matrix file
		substitution matrix. Without it, BLOSUM62 is used.
	-i, --input file
		the two sequences. Default is stdin.
	-o, --output file
		default is stdout.
	-g, --gap penalty
		linear gap penalty, zero or negative (default -2).
	-c, --config file
		yaml file with any of matrix, input, output, gap, exact, ids, verbose.
		Flags given on the command line win.
	--exact
		use the quadratic space solver. The score is the same, it just
		needs more memory.
	--ids
		print the two ids before the alignment.
	-v, --verbose
		log what the recursion is doing, on stderr.

Exit status is 0 on success, 1 if something failed and 2 for a usage error.
*/
package main
