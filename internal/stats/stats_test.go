package stats

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ranklab/critdiff/pkg/tukey"
)

func aeq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRanksNoTies(t *testing.T) {
	// Rows are algorithms, columns datasets; higher score is better.
	data := mat.NewDense(3, 2, []float64{
		9, 1,
		5, 8,
		1, 4,
	})

	ranks, err := Ranks(data)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{
		1, 3,
		2, 1,
		3, 2,
	}
	got := ranks.RawMatrix().Data
	for i := range want {
		if !aeq(got[i], want[i]) {
			t.Fatalf("ranks = %v, want %v", got, want)
		}
	}
}

func TestRanksColumnsArePermutations(t *testing.T) {
	// With no ties, every column's ranks must be a permutation of 1..k.
	k, n := 7, 5
	data := mat.NewDense(k, n, nil)
	perm := rand.Perm(k * n)
	for i, p := range perm {
		data.Set(i/n, i%n, float64(p))
	}

	ranks, err := Ranks(data)
	if err != nil {
		t.Fatal(err)
	}

	for col := 0; col < n; col++ {
		seen := make(map[float64]bool)
		for row := 0; row < k; row++ {
			seen[ranks.At(row, col)] = true
		}
		for r := 1; r <= k; r++ {
			if !seen[float64(r)] {
				t.Fatalf("column %d: rank %d missing, got %v", col, r, mat.Col(nil, col, ranks))
			}
		}
	}
}

func TestRanksMidRankTies(t *testing.T) {
	// Two-way tie for best: both get (1+2)/2 = 1.5, next value gets 3.
	data := mat.NewDense(3, 1, []float64{7, 7, 2})

	ranks, err := Ranks(data)
	if err != nil {
		t.Fatal(err)
	}

	if !aeq(ranks.At(0, 0), 1.5) || !aeq(ranks.At(1, 0), 1.5) || !aeq(ranks.At(2, 0), 3) {
		t.Fatalf("tie ranks = %v, want [1.5 1.5 3]", mat.Col(nil, 0, ranks))
	}
}

func TestRanksColumnSumInvariant(t *testing.T) {
	// Mid-rank averaging preserves the column sum k*(k+1)/2, ties or not.
	data := mat.NewDense(5, 3, []float64{
		3, 3, 1,
		3, 2, 1,
		5, 2, 1,
		1, 2, 9,
		5, 8, 1,
	})

	ranks, err := Ranks(data)
	if err != nil {
		t.Fatal(err)
	}

	k, n := data.Dims()
	wantSum := float64(k*(k+1)) / 2
	for col := 0; col < n; col++ {
		sum := 0.0
		for row := 0; row < k; row++ {
			sum += ranks.At(row, col)
		}
		if !aeq(sum, wantSum) {
			t.Fatalf("column %d rank sum = %v, want %v", col, sum, wantSum)
		}
	}
}

func TestRanksWithTolerance(t *testing.T) {
	// 1.0 and 1.0000001 tie under a 1e-6 tolerance but not under exact
	// equality.
	data := mat.NewDense(3, 1, []float64{1.0000001, 1.0, 0.5})

	exact, err := Ranks(data)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(exact.At(0, 0), 1) || !aeq(exact.At(1, 0), 2) {
		t.Fatalf("exact ranks = %v, want [1 2 3]", mat.Col(nil, 0, exact))
	}

	fuzzy, err := RanksWithTolerance(data, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(fuzzy.At(0, 0), 1.5) || !aeq(fuzzy.At(1, 0), 1.5) || !aeq(fuzzy.At(2, 0), 3) {
		t.Fatalf("fuzzy ranks = %v, want [1.5 1.5 3]", mat.Col(nil, 0, fuzzy))
	}
}

func TestRanksInvalidInput(t *testing.T) {
	if _, err := Ranks(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil matrix: want ErrInvalidArgument, got %v", err)
	}
	if _, err := RanksWithTolerance(mat.NewDense(2, 2, nil), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative tolerance: want ErrInvalidArgument, got %v", err)
	}
}

func TestAverageRanks(t *testing.T) {
	ranks := mat.NewDense(2, 3, []float64{
		1, 1, 2,
		2, 2, 1,
	})

	avg := AverageRanks(ranks)
	if !aeq(avg[0], 4.0/3) || !aeq(avg[1], 5.0/3) {
		t.Fatalf("average ranks = %v", avg)
	}
}

func TestCriticalDifferenceKnownValue(t *testing.T) {
	// k=2, n=7: df = 12, q(0.05; 2, 12) = 3.08 exactly from the table.
	cd, err := CriticalDifference(0.05, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	want := 3.08 / math.Sqrt2 * math.Sqrt(2*3/(6.0*7))
	if !aeq(cd, want) {
		t.Fatalf("CD = %v, want %v", cd, want)
	}
}

func TestCriticalDifferenceMonotonicInAlgorithms(t *testing.T) {
	for _, alpha := range []float64{0.05, 0.01} {
		prev := 0.0
		for k := 2; k <= 10; k++ {
			cd, err := CriticalDifference(alpha, k, 20)
			if err != nil {
				t.Fatal(err)
			}
			if cd < prev {
				t.Fatalf("CD(alpha=%v, k=%d) = %v decreased below %v", alpha, k, cd, prev)
			}
			prev = cd
		}
	}
}

func TestCriticalDifferenceMonotonicInDatasets(t *testing.T) {
	for _, alpha := range []float64{0.05, 0.01} {
		prev := math.Inf(1)
		for n := 2; n <= 50; n++ {
			cd, err := CriticalDifference(alpha, 5, n)
			if err != nil {
				t.Fatal(err)
			}
			if cd > prev {
				t.Fatalf("CD(alpha=%v, n=%d) = %v increased above %v", alpha, n, cd, prev)
			}
			prev = cd
		}
	}
}

func TestCriticalDifferenceStricterAlpha(t *testing.T) {
	for k := 2; k <= 10; k++ {
		for n := 2; n <= 30; n += 3 {
			cd05, err := CriticalDifference(0.05, k, n)
			if err != nil {
				t.Fatal(err)
			}
			cd01, err := CriticalDifference(0.01, k, n)
			if err != nil {
				t.Fatal(err)
			}
			if cd01 < cd05 {
				t.Fatalf("CD(0.01; %d, %d) = %v < CD(0.05) = %v", k, n, cd01, cd05)
			}
		}
	}
}

func TestCriticalDifferenceInvalidArguments(t *testing.T) {
	cases := []struct {
		alpha float64
		k, n  int
	}{
		{0.1, 3, 10},
		{0.05, 1, 10},
		{0.05, 0, 10},
		{0.01, 3, 0},
	}
	for _, c := range cases {
		if _, err := CriticalDifference(c.alpha, c.k, c.n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CriticalDifference(%v, %d, %d): want ErrInvalidArgument, got %v", c.alpha, c.k, c.n, err)
		}
	}
}

func TestCriticalDifferenceLookupFailurePropagates(t *testing.T) {
	// n=1 gives df=0, which the table cannot resolve; the lookup error
	// must surface unchanged.
	if _, err := CriticalDifference(0.05, 3, 1); !errors.Is(err, tukey.ErrTableRange) {
		t.Errorf("want tukey.ErrTableRange, got %v", err)
	}
	// k=11 is beyond the tabulated group counts.
	if _, err := CriticalDifference(0.05, 11, 10); !errors.Is(err, tukey.ErrTableRange) {
		t.Errorf("want tukey.ErrTableRange, got %v", err)
	}
}

func TestGroupCliquesSinglePair(t *testing.T) {
	cliques := GroupCliques([]float64{1.2, 1.3}, 0.5)
	if len(cliques) != 1 {
		t.Fatalf("cliques = %v, want one", cliques)
	}
	if !aeq(cliques[0].Low, 1.2) || !aeq(cliques[0].High, 1.3) {
		t.Fatalf("clique = %v, want [1.2, 1.3]", cliques[0])
	}
}

func TestGroupCliquesNoEligiblePartners(t *testing.T) {
	if got := GroupCliques([]float64{1, 3, 5}, 0.5); len(got) != 0 {
		t.Fatalf("cliques = %v, want none", got)
	}
	if got := GroupCliques([]float64{2.5}, 1.0); len(got) != 0 {
		t.Fatalf("single algorithm: cliques = %v, want none", got)
	}
	if got := GroupCliques(nil, 1.0); len(got) != 0 {
		t.Fatalf("empty input: cliques = %v, want none", got)
	}
}

func TestGroupCliquesMergesRedundantSpans(t *testing.T) {
	// 1.0 reaches 1.8 and 1.5 also reaches only 1.8: the second span is
	// contained in the first and must be dropped; 1.8 reaches 2.4.
	avg := []float64{1.0, 1.5, 1.8, 2.4}
	cliques := GroupCliques(avg, 0.9)

	want := []Clique{{Low: 1.0, High: 1.8}, {Low: 1.8, High: 2.4}}
	if len(cliques) != len(want) {
		t.Fatalf("cliques = %v, want %v", cliques, want)
	}
	for i := range want {
		if !aeq(cliques[i].Low, want[i].Low) || !aeq(cliques[i].High, want[i].High) {
			t.Fatalf("cliques = %v, want %v", cliques, want)
		}
	}
}

func TestGroupCliquesDominantStaysAlone(t *testing.T) {
	// The dominant algorithm at rank 1.0 must share no clique with
	// anything beyond 1.0 + cd.
	cd := 0.8
	avg := []float64{1.0, 2.5, 2.9, 3.1}
	for _, c := range GroupCliques(avg, cd) {
		if aeq(c.Low, 1.0) && c.High > 1.0+cd {
			t.Fatalf("dominant algorithm grouped across the CD: %v", c)
		}
	}
}

func TestGroupCliquesTiedRanksAnchorNothing(t *testing.T) {
	// Equal average ranks have zero gap, which is not strictly positive,
	// so they form no clique on their own (the diagram convention).
	if got := GroupCliques([]float64{2, 2, 2}, 1.0); len(got) != 0 {
		t.Fatalf("cliques = %v, want none", got)
	}
}

func BenchmarkRanks(b *testing.B) {
	sizes := []struct {
		algorithms int
		datasets   int
	}{
		{10, 30},
		{10, 100},
		{50, 100},
	}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Algorithms%d_Datasets%d", size.algorithms, size.datasets), func(b *testing.B) {
			randomData := make([]float64, size.algorithms*size.datasets)
			for i := range randomData {
				randomData[i] = rand.Float64() * 100
			}
			data := mat.NewDense(size.algorithms, size.datasets, randomData)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Ranks(data)
			}
		})
	}
}
