// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/comb"
)

func TestRange(t *testing.T) {
	got := comb.Collect(comb.Range(3, 4))
	want := []int{3, 4, 5, 6}
	if !slices.Equal(got, want) {
		t.Fatalf("Range(3, 4) = %v, want %v", got, want)
	}
}

func TestRangeEmpty(t *testing.T) {
	if got := comb.Collect(comb.Range(0, 0)); len(got) != 0 {
		t.Fatalf("Range(0, 0) = %v, want empty", got)
	}
	if got := comb.Collect(comb.Range(5, -1)); len(got) != 0 {
		t.Fatalf("Range(5, -1) = %v, want empty", got)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"prefix", 2, []int{0, 1}},
		{"whole", 4, []int{0, 1, 2, 3}},
		{"beyond", 10, []int{0, 1, 2, 3}},
		{"zero", 0, nil},
		{"negative", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := comb.Collect(comb.Take(comb.Range(0, 4), tt.n))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Take(n=%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTakeBoundsInfiniteSequence(t *testing.T) {
	got := comb.Collect(comb.Take(comb.Naturals(), 5))
	want := []int{0, 1, 2, 3, 4}
	if !slices.Equal(got, want) {
		t.Fatalf("Take(Naturals, 5) = %v, want %v", got, want)
	}
}

func TestTakeDoesNotOverpull(t *testing.T) {
	yields := 0
	counted := func(yield func(int) bool) {
		for i := 0; ; i++ {
			yields++
			if !yield(i) {
				return
			}
		}
	}
	_ = comb.Collect(comb.Take(counted, 3))
	if yields != 3 {
		t.Fatalf("underlying sequence yielded %d elements, want 3", yields)
	}
}

func TestCollectEmpty(t *testing.T) {
	if got := comb.Collect(comb.Range(0, 0)); got != nil {
		t.Fatalf("Collect of empty sequence = %v, want nil", got)
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{4, 2, 6},
		{5, 3, 10},
		{10, 5, 252},
		{20, 10, 184756},
		{52, 5, 2598960},
		{3, 4, 0},
		{3, -1, 0},
	}
	for _, tt := range tests {
		if got := comb.Binomial(tt.n, tt.k); got != tt.want {
			t.Fatalf("Binomial(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestBinomialSymmetry(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			if comb.Binomial(n, k) != comb.Binomial(n, n-k) {
				t.Fatalf("Binomial(%d, %d) != Binomial(%d, %d)", n, k, n, n-k)
			}
		}
	}
}
