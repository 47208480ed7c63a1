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

import "testing"

func TestScoreAddSub(t *testing.T) {
	s := Score{Mid: 10, End: -5}
	s.Add(Score{Mid: 3, End: 7})
	if s.Mid != 13 || s.End != 2 {
		t.Errorf("Add: expected {13 2}, got %s", s.String())
	}
	s.Sub(Score{Mid: 3, End: 7})
	if s.Mid != 10 || s.End != -5 {
		t.Errorf("Sub: expected {10 -5}, got %s", s.String())
	}
}

func TestScoreInterpolate(t *testing.T) {
	s := Score{Mid: 100, End: 0}
	if got := s.Interpolate(GamePhaseMax); got != 100 {
		t.Errorf("full mid phase: expected 100, got %d", got)
	}
	if got := s.Interpolate(0); got != 0 {
		t.Errorf("full end phase: expected 0, got %d", got)
	}
	if got := s.Interpolate(GamePhaseMax * 2); got != 100 {
		t.Errorf("phase above max should clamp: expected 100, got %d", got)
	}
	if got := s.Interpolate(-5); got != 0 {
		t.Errorf("negative phase should clamp: expected 0, got %d", got)
	}
}
