/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullmovechess/chesscore/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func mustFromFEN(t *testing.T, fen string) *position.Position {
	t.Helper()
	pos, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return pos
}

// TestStandardPerft runs the startpos node counts for shallow depths — the
// deep depths (6+) live in TestStandardPerftDeep, which is gated behind
// -short so the default test run stays fast.
func TestStandardPerft(t *testing.T) {
	results := []uint64{1, 20, 400, 8_902, 197_281, 4_865_609}
	for depth, want := range results {
		pos := mustFromFEN(t, position.StartFen)
		assert.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

func TestStandardPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	pos := mustFromFEN(t, position.StartFen)
	assert.Equal(t, uint64(119_060_324), Perft(pos, 6))
}

func TestKiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	results := []uint64{1, 48, 2_039, 97_862, 4_085_603}
	for depth, want := range results {
		pos := mustFromFEN(t, fen)
		assert.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

func TestKiwipetePerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	pos := mustFromFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, uint64(193_690_690), Perft(pos, 5))
}

func TestEndgamePerft(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	results := []uint64{1, 14, 191, 2_812, 43_238, 674_624}
	for depth, want := range results {
		pos := mustFromFEN(t, fen)
		assert.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

func TestEndgamePerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	pos := mustFromFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.Equal(t, uint64(178_633_661), Perft(pos, 7))
}

func TestMirrorPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	pos := mustFromFEN(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	assert.Equal(t, uint64(706_045_033), Perft(pos, 6))
}

func TestPos5Perft(t *testing.T) {
	fen := "rnbqkb1r/pp1p1ppp/2p5/4P3/2B5/8/PPP1NnPP/RNBQK2R w KQkq - 0 6"
	pos := mustFromFEN(t, fen)
	assert.Equal(t, uint64(53_392), Perft(pos, 3))
}

func TestPos6PerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	pos := mustFromFEN(t, fen)
	assert.Equal(t, uint64(6_923_051_137), Perft(pos, 6))
}

// Boundary scenarios exercising specific rule interactions, per the seed
// conformance table: en passant giving check, castling giving check,
// promotion escaping check, and underpromotion giving check.
func TestBoundaryPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"en passant gives check", "8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1", 6, 824_064},
		{"castling gives check", "5k2/8/8/8/8/8/8/4K2R w K - 0 1", 6, 661_072},
		{"promotion escapes check", "2K2r2/4P3/8/8/8/8/8/3k4 w - - 0 1", 6, 3_821_001},
		{"underpromotion gives check", "8/P1k5/K7/8/8/8/8/8 w - - 0 1", 6, 92_683},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustFromFEN(t, tc.fen)
			assert.Equal(t, tc.nodes, Perft(pos, tc.depth))
		})
	}
}

// TestPerftOneMatchesGenerateLegal checks the property-based invariant
// from spec.md §8: perft(P,1) == |generate(P, legal=true)| for a handful
// of positions reachable a few half-moves from the start, including ones
// with castling rights and en passant available.
func TestPerftOneMatchesGenerateLegal(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1",
		"rnbqkb1r/pp1p1ppp/2p5/4P3/2B5/8/PPP1NnPP/RNBQK2R w KQkq - 0 6",
	}
	for _, fen := range fens {
		pos := mustFromFEN(t, fen)
		list, err := Generate(pos, true, false)
		if err != nil {
			t.Fatalf("Generate(%q): %v", fen, err)
		}
		assert.Equal(t, uint64(list.Len()), Perft(pos, 1), "fen %q", fen)
	}
}
