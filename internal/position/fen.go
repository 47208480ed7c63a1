//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/nullmovechess/chesscore/internal/types"
)

// MalformedFenError reports a FEN string that could not be parsed.
type MalformedFenError struct {
	Fen    string
	Reason string
}

func (e *MalformedFenError) Error() string {
	return fmt.Sprintf("malformed fen %q: %s", e.Fen, e.Reason)
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() *Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// FromFEN parses a standard FEN string into a Position. Piece bitboards
// and occupancies are populated directly from the placement field; the
// status word is assembled from the remaining fields, and KEY is
// recomputed from scratch.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &MalformedFenError{Fen: fen, Reason: "expected at least 4 space-separated fields"}
	}

	var p Position

	if err := parsePlacement(&p, fields[0]); err != nil {
		return nil, &MalformedFenError{Fen: fen, Reason: err.Error()}
	}

	side := White
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, &MalformedFenError{Fen: fen, Reason: "side to move must be 'w' or 'b'"}
	}

	cr := CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				cr.Add(CastlingWhiteOO)
			case 'Q':
				cr.Add(CastlingWhiteOOO)
			case 'k':
				cr.Add(CastlingBlackOO)
			case 'q':
				cr.Add(CastlingBlackOOO)
			default:
				return nil, &MalformedFenError{Fen: fen, Reason: "castling field must be a subset of KQkq or '-'"}
			}
		}
	}

	ep := SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, &MalformedFenError{Fen: fen, Reason: "invalid en-passant square"}
		}
		// An ep-square not on rank 3 or 6 is simply not a legal ep target;
		// treat it as absent rather than failing the parse.
		if sq.RankOf() == Rank3 || sq.RankOf() == Rank6 {
			ep = sq
		}
	}

	halfMove := 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &MalformedFenError{Fen: fen, Reason: "half-move clock must be a non-negative integer"}
		}
		halfMove = n
	}

	fullMove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &MalformedFenError{Fen: fen, Reason: "full-move number must be a positive integer"}
		}
		fullMove = n
	}

	p[idxStatus] = packStatus(side, cr, ep, halfMove, fullMove)
	p[idxKey] = uint64(computeKey(&p))

	return &p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement must have 8 ranks separated by '/'")
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i) // FEN lists rank 8 first
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if !file.IsValid() {
				return fmt.Errorf("rank %s has too many squares", rank.String())
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return fmt.Errorf("unrecognized piece character %q", c)
			}
			sq := SquareOf(file, rank)
			b := sq.Bb()
			p[pc] |= uint64(b)
			p[pc.ColorOf().OccupancyIndex()] |= uint64(b)
			file++
		}
		if file != FileNone {
			return fmt.Errorf("rank %s does not add up to 8 squares", rank.String())
		}
	}
	return nil
}

// ToFEN serializes p as a standard FEN string.
func ToFEN(p *Position) string {
	var b strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('/')
	}

	b.WriteByte(' ')
	b.WriteString(p.SideToMove().String())

	b.WriteByte(' ')
	cr := p.CastlingRights()
	b.WriteString(cr.String())

	b.WriteByte(' ')
	if ep := p.EpSquare(); ep != SqNone {
		b.WriteString(ep.String())
	} else {
		b.WriteByte('-')
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfMoveClock()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullMoveNumber()))

	return b.String()
}
