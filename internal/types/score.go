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

package types

import "fmt"

// Score carries a mid-game and an end-game value for the same term (material,
// piece-square bonus, mobility, ...) so callers can blend the two once the
// game phase of a position is known, instead of picking one table up front.
type Score struct {
	Mid Value
	End Value
}

// Add folds another Score's mid/end parts into s.
func (s *Score) Add(a Score) {
	s.Mid += a.Mid
	s.End += a.End
}

// Sub removes another Score's mid/end parts from s.
func (s *Score) Sub(a Score) {
	s.Mid -= a.Mid
	s.End -= a.End
}

// Interpolate blends the mid and end parts using phase out of GamePhaseMax,
// where phase == GamePhaseMax means "fully mid game" and 0 means "fully end
// game". phase is clamped to [0, GamePhaseMax].
func (s Score) Interpolate(phase int) Value {
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	} else if phase < 0 {
		phase = 0
	}
	return (s.Mid*Value(phase) + s.End*Value(GamePhaseMax-phase)) / GamePhaseMax
}

func (s Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.Mid, s.End)
}
