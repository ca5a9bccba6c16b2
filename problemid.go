package ndp

import (
	"fmt"
	"math/big"
	"time"

	"github.com/mitchellh/hashstructure"
)

// problemIdentity is the structural input to the problem ID hash: the
// input number, its bit width, the thread count the run used, and the UTC
// timestamp of the run. Hashing this struct with hashstructure is the Go
// stand-in for the reference's std::hash<std::string> over the
// concatenation "<input_number>-<num_bits>-<num_threads>-<utcTime>".
type problemIdentity struct {
	InputNumber string
	NumBits     int
	NumThreads  int
	UTCTime     string
}

// ProblemID computes the 16-hex-character identifier for a run, deterministic
// given fixed inputs (in particular, a fixed UTC second).
func ProblemID(inputNumber *big.Int, numBits, numThreads int, utcTime time.Time) string {
	id := problemIdentity{
		InputNumber: inputNumber.String(),
		NumBits:     numBits,
		NumThreads:  numThreads,
		UTCTime:     utcTime.UTC().Format("2006-01-02 15:04:05 UTC"),
	}
	h, err := hashstructure.Hash(id, nil)
	if err != nil {
		// hashstructure only fails on unsupported field types; problemIdentity
		// has none, so this is unreachable in practice.
		panic(fmt.Sprintf("ndp: hashing problem identity: %v", err))
	}
	return fmt.Sprintf("%016x", h)
}
