package likes

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/five82/petpad/internal/kv"
)

type countingRepo struct {
	value   int
	saves   []int
	saveErr error
}

func (r *countingRepo) Load() (int, error) { return r.value, nil }

func (r *countingRepo) Save(n int) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, n)
	r.value = n
	return nil
}

func TestInitialize_StoredValues(t *testing.T) {
	tests := []struct {
		name    string
		stored  *string
		want    int
		wantErr bool
	}{
		{"absent", nil, 0, false},
		{"valid", ptr("5"), 5, false},
		{"padded", ptr(" 12\n"), 12, false},
		{"null", ptr("null"), 0, false},
		{"garbage", ptr("lots"), 0, true},
		{"fraction", ptr("2.5"), 0, true},
		{"negative", ptr("-3"), 0, true},
		{"decimal point", ptr("5.0"), 5, false},
		{"exponent", ptr("1e1"), 10, false},
		{"negative exponent", ptr("-2e0"), 0, true},
		{"max int", ptr(strconv.Itoa(math.MaxInt)), math.MaxInt, false},
		{"beyond max int", ptr("1e30"), math.MaxInt, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tt.stored != nil {
				_ = store.Set(StorageKey, *tt.stored)
			}
			c := NewCounter(NewKVRepository(store))
			err := c.Initialize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Initialize error = %v, wantErr %v", err, tt.wantErr)
			}
			if c.Value() != tt.want {
				t.Fatalf("Value = %d, want %d", c.Value(), tt.want)
			}
		})
	}
}

func TestDecrement_ClampsAtZero(t *testing.T) {
	repo := &countingRepo{}
	c := NewCounter(repo)
	_ = c.Initialize()

	got, err := c.Decrement()
	if err != nil {
		t.Fatalf("Decrement: %v", err)
	}
	if got != 0 || c.Value() != 0 {
		t.Fatalf("Decrement at 0 = %d, want 0", got)
	}
	if len(repo.saves) != 0 {
		t.Fatalf("saves = %v, want none for a clamped decrement", repo.saves)
	}
}

func TestDecrement_NeverNegative(t *testing.T) {
	for start := 0; start <= 5; start++ {
		c := NewCounter(&countingRepo{value: start})
		_ = c.Initialize()
		for i := 0; i < start+3; i++ {
			if v, _ := c.Decrement(); v < 0 {
				t.Fatalf("start %d: Decrement produced %d", start, v)
			}
		}
		if c.Value() != 0 {
			t.Fatalf("start %d: Value = %d, want 0", start, c.Value())
		}
	}
}

func TestIncrementThenDecrement_RestoresValue(t *testing.T) {
	for _, start := range []int{0, 1, 7, 1000} {
		c := NewCounter(&countingRepo{value: start})
		_ = c.Initialize()
		_, _ = c.Increment()
		_, _ = c.Decrement()
		if c.Value() != start {
			t.Fatalf("start %d: Value = %d after inc/dec", start, c.Value())
		}
	}
}

func TestSavesOncePerChange(t *testing.T) {
	repo := &countingRepo{}
	c := NewCounter(repo)
	_ = c.Initialize()

	_, _ = c.Increment()
	_, _ = c.Increment()
	_, _ = c.Decrement()

	want := []int{1, 2, 1}
	if len(repo.saves) != len(want) {
		t.Fatalf("saves = %v, want %v", repo.saves, want)
	}
	for i := range want {
		if repo.saves[i] != want[i] {
			t.Fatalf("saves = %v, want %v", repo.saves, want)
		}
	}
}

func TestPersistedValueSurvivesReinitialize(t *testing.T) {
	store := kv.NewMemory()
	c := NewCounter(NewKVRepository(store))
	_ = c.Initialize()
	for i := 0; i < 5; i++ {
		if _, err := c.Increment(); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}

	value, _, _ := store.Get(StorageKey)
	if value != "5" {
		t.Fatalf("stored %s = %q, want 5", StorageKey, value)
	}

	fresh := NewCounter(NewKVRepository(store))
	if err := fresh.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if fresh.Value() != 5 {
		t.Fatalf("Value = %d, want 5", fresh.Value())
	}
}

func TestSaveFailureKeepsValue(t *testing.T) {
	boom := errors.New("quota exceeded")
	repo := &countingRepo{value: 3}
	c := NewCounter(repo)
	_ = c.Initialize()
	repo.saveErr = boom

	got, err := c.Increment()
	if !errors.Is(err, boom) {
		t.Fatalf("Increment error = %v, want %v", err, boom)
	}
	if got != 3 || c.Value() != 3 {
		t.Fatalf("Value = %d, want 3 after failed save", c.Value())
	}
}

func TestIncrement_StopsAtMaxInt(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set(StorageKey, strconv.Itoa(math.MaxInt))
	c := NewCounter(NewKVRepository(store))
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	got, err := c.Increment()
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if got != math.MaxInt || c.Value() != math.MaxInt {
		t.Fatalf("Increment = %d, want %d", got, math.MaxInt)
	}
	stored, _, _ := store.Get(StorageKey)
	if stored != strconv.Itoa(math.MaxInt) {
		t.Fatalf("stored = %q, want %d", stored, math.MaxInt)
	}

	if got, _ := c.Decrement(); got != math.MaxInt-1 {
		t.Fatalf("Decrement = %d, want %d", got, math.MaxInt-1)
	}
}

func ptr(s string) *string { return &s }
