package game

import (
	"hash/fnv"

	"github.com/jbrot/santorini-ai/board"
)

// stamp is a cheap, pure fingerprint of a game snapshot's board, pawn
// positions, and active player. Actions capture the stamp of the Game they
// were derived from; Apply checks it against the current Game's stamp and
// panics on mismatch. This is the "hash or generation counter" identity
// check described for action-game binding: it catches a bug (an action
// replayed against a game state it wasn't produced from) at the point of
// misuse rather than silently corrupting board state.
type stamp uint64

func computeStamp(b board.Board, pawns []board.Point, active board.Player) stamp {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	write(uint64(b.RawWords()[0]))
	write(uint64(b.RawWords()[1]))
	for _, p := range pawns {
		write(uint64(p.Offset()))
	}
	write(uint64(active))
	return stamp(h.Sum64())
}

func checkStamp(got, want stamp) {
	if got != want {
		panic("game: action applied to a different game than it was derived from")
	}
}
