package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// ReplicationSeed derives an independent seed for replication i from the
// master seed. Streams are isolated by XOR-ing an FNV-1a hash of the
// replication name, so two replications with the same master seed never
// share a random stream.
func ReplicationSeed(master int64, i int) int64 {
	return master ^ fnv1a64(fmt.Sprintf("replication_%d", i))
}

// NewReplicationRNG returns the RNG for replication i. The returned
// generator must be used by a single replication only: it is not
// thread-safe and sharing it would destroy reproducibility.
func NewReplicationRNG(master int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(ReplicationSeed(master, i)))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
