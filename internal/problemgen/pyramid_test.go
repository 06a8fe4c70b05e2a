package problemgen

import "testing"

func TestPyramids_Shape(t *testing.T) {
	for seed := uint64(1); seed <= 300; seed++ {
		for _, max := range []int{1, 8, 20, 100} {
			pyramids := Pyramids(PyramidSettings{Count: 3, Max: max}, seeded(seed))
			if len(pyramids) != 3 {
				t.Fatalf("got %d pyramids, want 3", len(pyramids))
			}
			upper := max
			if upper < PyramidMinApex {
				upper = PyramidMinApex
			}
			for _, p := range pyramids {
				if len(p.Rows) != PyramidBaseWidth {
					t.Fatalf("got %d rows, want %d", len(p.Rows), PyramidBaseWidth)
				}
				if apex := p.Apex(); apex < PyramidMinApex || apex > upper {
					t.Fatalf("seed %d max %d: apex %d outside [8, %d]", seed, max, apex, upper)
				}
				for _, v := range p.Base() {
					if v < 1 {
						t.Fatalf("non-positive base value in %v", p.Base())
					}
				}
				for r := 0; r < len(p.Rows)-1; r++ {
					if len(p.Rows[r]) != r+1 {
						t.Fatalf("row %d has %d cells", r, len(p.Rows[r]))
					}
					for c, v := range p.Rows[r] {
						below := p.Rows[r+1]
						if v != below[c]+below[c+1] {
							t.Fatalf("cell (%d,%d)=%d is not %d+%d", r, c, v, below[c], below[c+1])
						}
					}
				}
			}
		}
	}
}

func TestPyramidRows(t *testing.T) {
	rows := pyramidRows([]int{1, 2, 3, 4})
	want := [][]int{{20}, {8, 12}, {3, 5, 7}, {1, 2, 3, 4}}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Fatalf("rows = %v, want %v", rows, want)
			}
		}
	}
}
