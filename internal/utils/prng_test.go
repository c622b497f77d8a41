// internal/utils/prng_test.go
package utils

import (
	"math"
	"testing"

	"go-survivors/pkg/geom"
)

type weightedItem struct {
	name   string
	weight int
}

func (w weightedItem) GetWeight() int { return w.weight }

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestChooseWeightedSkipsZeroWeights(t *testing.T) {
	p := NewPRNGService(7)
	items := []weightedItem{{"never", 0}, {"always", 5}, {"none", 0}}
	for i := 0; i < 200; i++ {
		if got := ChooseWeighted(p, items); got != 1 {
			t.Fatalf("got index %d want 1", got)
		}
	}
	if got := ChooseWeighted(p, []weightedItem(nil)); got != -1 {
		t.Fatalf("empty table: got %d want -1", got)
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	p := NewPRNGService(1)
	items := []weightedItem{{"a", 1}, {"b", 3}}
	counts := [2]int{}
	for i := 0; i < 4000; i++ {
		counts[ChooseWeighted(p, items)]++
	}
	ratio := float64(counts[1]) / float64(counts[0])
	if ratio < 2.5 || ratio > 3.5 {
		t.Fatalf("weight ratio: got %.2f want about 3", ratio)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	p := NewPRNGService(3)
	xs := []int{0, 1, 2, 3, 4, 5, 6}
	p.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	seen := map[int]bool{}
	for _, x := range xs {
		seen[x] = true
	}
	if len(seen) != 7 {
		t.Fatalf("shuffle lost elements: %v", xs)
	}
}

func TestPointOnCircleRadius(t *testing.T) {
	p := NewPRNGService(9)
	c := geom.V(3, -2)
	for i := 0; i < 50; i++ {
		pt := p.PointOnCircle(c, 12)
		if d := geom.Dist(c, pt); math.Abs(d-12) > 1e-9 {
			t.Fatalf("distance: got %v want 12", d)
		}
		in := p.InsideCircle(c, 0.5)
		if geom.Dist(c, in) > 0.5+1e-9 {
			t.Fatalf("inside point outside disc: %v", in)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	p := NewPRNGService(5)
	for i := 0; i < 100; i++ {
		if p.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !p.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
