package xzalgo320

import (
	"os"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Engine selects a LITTLE-box batch implementation. The tag travels with
// each Digest so a context keeps the engine it was created with.
type Engine uint8

const (
	EngineScalar Engine = iota
	EngineAVX2
	EngineNEON
)

const engineCount = 3

func (e Engine) String() string {
	switch e {
	case EngineAVX2:
		return "avx2"
	case EngineNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// engines maps a tag to its batch routine. An accelerated entry must be
// byte-identical to the portable routine for every input; the vector
// entries alias it until a hardware backend exists.
var engines = [engineCount]func(input []uint64, salt, roundBase uint64, numBlocks int){
	EngineScalar: littleBoxBatch,
	EngineAVX2:   littleBoxBatch,
	EngineNEON:   littleBoxBatch,
}

func littleBoxExecute(e Engine, input []uint64, salt, roundBase uint64, numBlocks int) {
	if int(e) >= engineCount {
		e = EngineScalar
	}
	engines[e](input, salt, roundBase, numBlocks)
}

var (
	detected     = detectEngine()
	forcedScalar atomic.Bool
)

func init() {
	if v := os.Getenv("XZALGO320_FORCE_SCALAR"); v != "" && v != "0" && v != "false" {
		forcedScalar.Store(true)
	}
}

func detectEngine() Engine {
	switch {
	case cpu.X86.HasAVX2:
		return EngineAVX2
	case cpu.ARM64.HasASIMD:
		return EngineNEON
	default:
		return EngineScalar
	}
}

// ForceScalar pins newly created digests to the scalar engine. Digests
// already in flight keep their tag.
func ForceScalar(force bool) {
	forcedScalar.Store(force)
}

// ForcedScalar reports whether the scalar engine is pinned.
func ForcedScalar() bool {
	return forcedScalar.Load()
}

func defaultEngine() Engine {
	if forcedScalar.Load() {
		return EngineScalar
	}
	return detected
}

// EngineName returns the name of the engine new digests will use.
func EngineName() string {
	return defaultEngine().String()
}
