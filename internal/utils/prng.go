// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-survivors/pkg/geom"
)

// PRNGService оборачивает генератор случайных чисел, чтобы вся симуляция
// использовала один предсказуемый (seeded) источник.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed, useful for replaying a run.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance is a single Bernoulli trial with probability p.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// Range returns a value in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// PointOnCircle returns a point sampled uniformly on the circle of radius r
// around center.
func (s *PRNGService) PointOnCircle(center geom.Vec2, r float64) geom.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	return center.Add(geom.FromAngle(angle).Scale(r))
}

// InsideCircle returns a point sampled uniformly inside the disc of radius r.
func (s *PRNGService) InsideCircle(center geom.Vec2, r float64) geom.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := r * math.Sqrt(s.rng.Float64())
	return center.Add(geom.FromAngle(angle).Scale(dist))
}

// Shuffle переставляет n элементов алгоритмом Фишера–Йетса.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		swap(i, j)
	}
}

// Weighted is anything that can take part in a weighted draw.
type Weighted interface {
	GetWeight() int
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс
// выбранного элемента, или -1 для пустой таблицы. Суммирует все веса,
// выбирает число в этом диапазоне и находит соответствующий элемент.
func ChooseWeighted[T Weighted](s *PRNGService, entries []T) int {
	if len(entries) == 0 {
		return -1
	}

	totalWeight := 0
	for _, entry := range entries {
		if w := entry.GetWeight(); w > 0 {
			totalWeight += w
		}
	}

	if totalWeight <= 0 {
		// Некорректные веса: равновероятный выбор
		return s.Intn(len(entries))
	}

	r := s.Intn(totalWeight)
	upto := 0
	for i, entry := range entries {
		w := entry.GetWeight()
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(entries) - 1
}
