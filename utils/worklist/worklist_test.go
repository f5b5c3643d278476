package worklist

import "testing"

func TestWorklistDeduplicates(t *testing.T) {
	W := Empty[int]()
	for _, x := range []int{1, 2, 1, 3, 2} {
		W.Add(x)
	}

	if W.Len() != 3 {
		t.Fatalf("Expected 3 queued elements, got %d", W.Len())
	}

	for _, expected := range []int{1, 2, 3} {
		if next := W.GetNext(); next != expected {
			t.Errorf("GetNext() = %d, expected %d", next, expected)
		}
	}

	if !W.IsEmpty() {
		t.Error("Expected worklist to be empty")
	}
}

func TestWorklistRequeue(t *testing.T) {
	visits := map[int]int{}
	Start(0, func(next int, add func(int)) {
		visits[next]++
		if next < 3 {
			add(next + 1)
			// Already queued or processed elements may be added again.
			add(next + 1)
		}
		if next == 3 && visits[0] == 1 {
			add(0)
		}
	})

	expected := map[int]int{0: 2, 1: 2, 2: 2, 3: 2}
	for k, v := range expected {
		if visits[k] != v {
			t.Errorf("%d visited %d times, expected %d", k, visits[k], v)
		}
	}
}
