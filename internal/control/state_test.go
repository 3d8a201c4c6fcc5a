package control

import "testing"

func TestEffective(t *testing.T) {
	tests := []struct {
		name         string
		left, right  bool
		wantL, wantR bool
	}{
		{"neither", false, false, false, false},
		{"left only", true, false, true, false},
		{"right only", false, true, false, true},
		{"both cancel out", true, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s State
			s.SetLeft(tc.left)
			s.SetRight(tc.right)

			l, r := s.Effective()
			if l != tc.wantL || r != tc.wantR {
				t.Errorf("Effective() = (%v, %v), expected (%v, %v)", l, r, tc.wantL, tc.wantR)
			}
			if l && r {
				t.Error("both effective flags must never be set together")
			}
			if s.Left() != tc.left || s.Right() != tc.right {
				t.Error("raw flags should be stored unchanged")
			}
		})
	}
}

func TestRelease(t *testing.T) {
	var s State
	s.SetLeft(true)
	s.SetRight(true)
	s.Release()

	if s.Left() || s.Right() {
		t.Error("Release should clear both flags")
	}
}
