// 2 Oct 2026

/*
Package align computes global alignments of two sequences in linear space.

The score of aligning a sequence s1 against s2 comes from a square
substitution matrix, a map from symbols to rows of the matrix and a
single, linear gap penalty. There are three levels.

	Exact      the textbook O(N x M) table with a traceback. It is the base
	           case of the recursion and what everything else is checked
	           against.
	LastColumn the same recurrence, but only one vector of length
	           len(s2)+1 is kept. It returns the scores of s1 against every
	           prefix of s2.
	Align      Hirschberg's divide and conquer. Cut s1 in half, scan the
	           top half forwards and the bottom half backwards, find the
	           column of s2 where the two meet best and recurse on the two
	           quadrants.

Exact is semi-global in s2. All of s1 is used, but the best score is
taken from anywhere in the last row, so a tail of s2 may be left over for
free. Align reproduces this. When either input has length 0 or 1 it
simply calls Exact. Otherwise it finds the end point in s2 with one column
scan and then aligns globally, so its score is always the score Exact
would give.

The aligned output is the list of s1 symbols that sit on a diagonal step
of the path, so it is always an ordered subsequence of s1.

Nothing here is concurrent and nothing keeps state between calls. The two
halves of a split are independent, but they are run one after the other.
*/
package align
