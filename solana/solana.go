// Package solana carries the low-level RPC and account-layout helpers
// shared by the betting client packages.
package solana

// Memcmp is an extra byte-comparison filter for program account
// queries, applied on top of the account discriminator.
type Memcmp struct {
	Offset uint64
	Bytes  []byte
}
