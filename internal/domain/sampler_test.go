package domain

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func makePool(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = Question{
			ID:            string(rune('a' + i)),
			Year:          2024,
			Statement:     "statement",
			Options:       []string{"o1", "o2", "o3", "o4"},
			CorrectAnswer: "A",
			Chapter:       "X",
		}
	}
	return pool
}

func TestSampler_Sample(t *testing.T) {
	tests := []struct {
		name      string
		poolSize  int
		requested int
		wantN     int
		wantCode  ErrorCode
	}{
		{"exact pool size", 5, 5, 5, ""},
		{"subset of pool", 10, 3, 3, ""},
		{"single question", 1, 1, 1, ""},
		{"empty pool", 0, 5, 0, ErrEmptyPool},
		{"insufficient pool", 3, 5, 0, ErrInsufficientPool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(rand.New(rand.NewSource(42)))
			got, err := s.Sample(makePool(tt.poolSize), tt.requested)

			if tt.wantCode != "" {
				var domainErr *DomainError
				if !errors.As(err, &domainErr) {
					t.Fatalf("Sample() error = %v, want DomainError", err)
				}
				if domainErr.Code != tt.wantCode {
					t.Errorf("Sample() error code = %s, want %s", domainErr.Code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Sample() unexpected error: %v", err)
			}
			if len(got) != tt.wantN {
				t.Errorf("Sample() returned %d questions, want %d", len(got), tt.wantN)
			}

			// All selections must be distinct and drawn from the pool.
			seen := make(map[string]bool)
			for _, q := range got {
				if seen[q.ID] {
					t.Errorf("Sample() returned duplicate question %s", q.ID)
				}
				seen[q.ID] = true
			}
		})
	}
}

func TestSampler_Sample_InsufficientCarriesCounts(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))
	_, err := s.Sample(makePool(3), 5)

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Sample() error = %v, want DomainError", err)
	}
	if got := domainErr.Context["available"]; got != 3 {
		t.Errorf("available = %v, want 3", got)
	}
	if got := domainErr.Context["requested"]; got != 5 {
		t.Errorf("requested = %v, want 5", got)
	}
}

func TestSampler_Sample_Deterministic(t *testing.T) {
	pool := makePool(10)

	first, err := NewSampler(rand.New(rand.NewSource(7))).Sample(pool, 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewSampler(rand.New(rand.NewSource(7))).Sample(pool, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different samples: %v vs %v", first, second)
		}
	}
}

func TestSampler_Sample_DoesNotMutatePool(t *testing.T) {
	pool := makePool(6)
	original := make([]string, len(pool))
	for i, q := range pool {
		original[i] = q.ID
	}

	if _, err := NewSampler(rand.New(rand.NewSource(3))).Sample(pool, 6); err != nil {
		t.Fatal(err)
	}

	for i, q := range pool {
		if q.ID != original[i] {
			t.Fatalf("Sample() mutated the input pool at index %d", i)
		}
	}
}

// Exercises one shared Sampler from many goroutines; run with -race to
// verify the generator is serialized.
func TestSampler_Sample_ConcurrentUse(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(42)))
	pool := makePool(20)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got, err := s.Sample(pool, 5)
				if err != nil {
					t.Error(err)
					return
				}
				if len(got) != 5 {
					t.Errorf("Sample() returned %d questions, want 5", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSampler_SampleUpTo(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(9)))

	got, err := s.SampleUpTo(makePool(3), 5)
	if err != nil {
		t.Fatalf("SampleUpTo() unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("SampleUpTo() returned %d questions, want 3", len(got))
	}

	// An empty pool is still terminal even on the confirmation path.
	_, err = s.SampleUpTo(nil, 5)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != ErrEmptyPool {
		t.Errorf("SampleUpTo(empty) error = %v, want %s", err, ErrEmptyPool)
	}
}
