// Command asm generates match_amd64.s for the parent module's matchGroup
// primitive. Run from this directory with:
//
//	go run asm.go -out ../match_amd64.s
//
// This lives in its own nested module (see go.mod in this directory) so
// that github.com/mmcloughlin/avo never becomes a dependency of the
// shipped library, only of the generator that produces its assembly —
// the same separation the teacher used for its own MatchByte generator.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

func main() {
	TEXT("matchGroup", NOSPLIT, "func(tag byte, group *[16]byte) uint16")
	Doc("matchGroup returns a 16-bit mask with bit i set iff group[i] == tag.")

	tag := Load(Param("tag"), GP32())
	ptr := Load(Param("group"), GP64())

	bcast, zero, loaded := XMM(), XMM(), XMM()
	PXOR(zero, zero)
	MOVD(tag, bcast)
	PSHUFB(zero, bcast)

	MOVOU(operand.Mem{Base: ptr}, loaded)
	PCMPEQB(loaded, bcast)

	result := GP32()
	PMOVMSKB(bcast, result)

	Store(result.As16(), ReturnIndex(0))
	RET()

	Generate()
}
