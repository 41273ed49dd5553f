// Package radixsort implements a stable least-significant-digit (LSD)
// byte-radix sort over a caller-supplied integer projection (spec.md §4.1).
//
// It is the one algorithmic primitive shared by the batch pathways of
// flatmap and batchlist: both sort a slice of records by an integer key
// extracted via a projection function, in time linear in the number of
// records and the key's byte width rather than n·log(n).
//
// # Algorithm
//
// For a key type K with byte width p = bitwidth(K)/8, the sort runs p
// passes, least-significant byte first. Each pass is a stable counting
// sort over one byte of the (sign-adjusted) key: histogram the byte,
// prefix-sum it into destination offsets, and scatter back-to-front so
// that entries with equal bytes keep their relative order. After p passes
// the whole key has been sorted, and if p is odd the final pass's
// destination buffer is copied back into the caller's slice so the result
// always ends up in the slice SortBy was given.
//
// Signed keys are handled by XOR-ing the sign bit before extracting bytes
// (ordmap.Unsigned), which reorders two's-complement values into the same
// order as their unsigned bit patterns without changing which byte of
// which pass holds which bits.
package radixsort
