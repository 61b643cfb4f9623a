// Package proof simulates on-chain anchoring for vault records. The stamps
// are deterministic hashes of the inputs and carry no cryptographic meaning.
package proof

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Generate returns the mock provenance pair for a vault record: an IPFS-style
// content identifier and an Ethereum-style transaction hash, both derived
// from the owning user, the file name and the call time.
func Generate(userID, name string, at time.Time) (cid, txHash string) {
	seed := []byte(userID + "-" + name + "-" + strconv.FormatInt(at.UnixNano(), 10))

	sum := sha256.Sum256(seed)
	cid = "Qm" + hex.EncodeToString(sum[:])[:16] + "..."

	md := md5.Sum(seed)
	txHash = "0x" + hex.EncodeToString(md[:])
	return cid, txHash
}
