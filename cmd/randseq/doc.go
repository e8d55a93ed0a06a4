// 31 July 2020

/*
Randseq is for making random sequences for testing the code.
Usage:

	randseq [flags] fname nseq length

will generate nseq sequences of length length and write them to fname.
With fname "-" they go to stdout. Two of them make an input for hirschberg.

Flags:

	-d, --dna
		use ACGT instead of the twenty amino acids
	-b, --blank
		put blank lines in the sequences. Readers should ignore them.
	-r, --seed
		random number seed
	-c, --comment
		text for the end of each header line

Whitespace should generally be unpredictable, so we generate funny cases.
*/
package main
