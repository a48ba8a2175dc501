package types

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func assertDenseIDs(t *testing.T, tasks []Task) {
	t.Helper()
	for i, task := range tasks {
		if task.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, task.ID)
		}
	}
}

func TestDayEnsureDefaults(t *testing.T) {
	t.Run("seeds empty day", func(t *testing.T) {
		d := NewDay(testNow)
		if !d.EnsureDefaults(DefaultTasks, testNow) {
			t.Fatal("expected seeding to happen")
		}
		if len(d.Tasks) != len(DefaultTasks) {
			t.Fatalf("expected %d tasks, got %d", len(DefaultTasks), len(d.Tasks))
		}
		assertDenseIDs(t, d.Tasks)
		for i, task := range d.Tasks {
			if task.Text != DefaultTasks[i] {
				t.Fatalf("task %d: expected %q, got %q", i, DefaultTasks[i], task.Text)
			}
			if task.Status != TaskStatusTodo {
				t.Fatalf("task %d: expected todo, got %s", i, task.Status)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		first := make([]Task, len(d.Tasks))
		copy(first, d.Tasks)
		if d.EnsureDefaults(DefaultTasks, testNow.Add(time.Hour)) {
			t.Fatal("second call must be a no-op")
		}
		if len(d.Tasks) != len(first) {
			t.Fatalf("task list changed: %d vs %d", len(d.Tasks), len(first))
		}
		for i := range first {
			if d.Tasks[i] != first[i] {
				t.Fatalf("task %d changed: %+v vs %+v", i, d.Tasks[i], first[i])
			}
		}
	})

	t.Run("no-op on non-empty day", func(t *testing.T) {
		d := NewDay(testNow)
		if _, err := d.Add("своя задача", testNow); err != nil {
			t.Fatal(err)
		}
		if d.EnsureDefaults(DefaultTasks, testNow) {
			t.Fatal("must not seed a day that has tasks")
		}
		if len(d.Tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(d.Tasks))
		}
	})
}

func TestDayEnsureMinimum(t *testing.T) {
	t.Run("tops up with unused defaults", func(t *testing.T) {
		d := NewDay(testNow)
		if _, err := d.Add(DefaultTasks[0], testNow); err != nil {
			t.Fatal(err)
		}
		d.EnsureMinimum(DefaultTasks, 3, testNow)
		if len(d.Tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(d.Tasks))
		}
		assertDenseIDs(t, d.Tasks)
		// The already-present default must not be duplicated.
		count := 0
		for _, task := range d.Tasks {
			if task.Text == DefaultTasks[0] {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("expected exactly one %q, got %d", DefaultTasks[0], count)
		}
	})

	t.Run("stops when defaults run out", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureMinimum(DefaultTasks, 10, testNow)
		if len(d.Tasks) != len(DefaultTasks) {
			t.Fatalf("expected %d tasks, got %d", len(DefaultTasks), len(d.Tasks))
		}
	})

	t.Run("no-op when already at minimum", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		d.EnsureMinimum(DefaultTasks, 3, testNow)
		if len(d.Tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(d.Tasks))
		}
	})
}

func TestDayAdd(t *testing.T) {
	t.Run("appends with fresh id", func(t *testing.T) {
		d := NewDay(testNow)
		task, err := d.Add("первая", testNow)
		if err != nil {
			t.Fatal(err)
		}
		if task.ID != 1 {
			t.Fatalf("expected id 1, got %d", task.ID)
		}
		task, err = d.Add("вторая", testNow)
		if err != nil {
			t.Fatal(err)
		}
		if task.ID != 2 {
			t.Fatalf("expected id 2, got %d", task.ID)
		}
	})

	t.Run("rejects closed day", func(t *testing.T) {
		d := NewDay(testNow)
		d.Closed = true
		if _, err := d.Add("поздно", testNow); !errors.Is(err, ErrDayClosed) {
			t.Fatalf("expected ErrDayClosed, got %v", err)
		}
	})

	t.Run("rejects blank text", func(t *testing.T) {
		d := NewDay(testNow)
		if _, err := d.Add("   ", testNow); !errors.Is(err, ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText, got %v", err)
		}
	})
}

func TestDayMarkDone(t *testing.T) {
	t.Run("sets status and timestamp", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		doneAt := testNow.Add(2 * time.Hour)
		task, err := d.MarkDone(2, doneAt)
		if err != nil {
			t.Fatal(err)
		}
		if !task.Done() {
			t.Fatal("expected task to be done")
		}
		if task.DoneAt == nil || !task.DoneAt.Equal(doneAt) {
			t.Fatalf("expected DoneAt %v, got %v", doneAt, task.DoneAt)
		}
	})

	t.Run("already done is a distinct error", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		if _, err := d.MarkDone(1, testNow); err != nil {
			t.Fatal(err)
		}
		if _, err := d.MarkDone(1, testNow); !errors.Is(err, ErrTaskDone) {
			t.Fatalf("expected ErrTaskDone, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		if _, err := d.MarkDone(99, testNow); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("closed day", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		d.Closed = true
		if _, err := d.MarkDone(1, testNow); !errors.Is(err, ErrDayClosed) {
			t.Fatalf("expected ErrDayClosed, got %v", err)
		}
	})
}

func TestDayRemove(t *testing.T) {
	t.Run("removes and renumbers", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		removed, err := d.Remove(map[int]bool{1: true, 3: true})
		if err != nil {
			t.Fatal(err)
		}
		if len(removed) != 2 {
			t.Fatalf("expected 2 removed, got %d", len(removed))
		}
		if len(d.Tasks) != 1 {
			t.Fatalf("expected 1 remaining, got %d", len(d.Tasks))
		}
		assertDenseIDs(t, d.Tasks)
		if d.Tasks[0].Text != DefaultTasks[1] {
			t.Fatalf("wrong survivor: %q", d.Tasks[0].Text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		if _, err := d.Remove(map[int]bool{42: true}); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("closed day", func(t *testing.T) {
		d := NewDay(testNow)
		d.EnsureDefaults(DefaultTasks, testNow)
		d.Closed = true
		if _, err := d.Remove(map[int]bool{1: true}); !errors.Is(err, ErrDayClosed) {
			t.Fatalf("expected ErrDayClosed, got %v", err)
		}
	})
}

func TestDayPartition(t *testing.T) {
	d := NewDay(testNow)
	d.EnsureDefaults(DefaultTasks, testNow)
	if _, err := d.MarkDone(2, testNow); err != nil {
		t.Fatal(err)
	}
	done, notDone := d.Partition()
	if len(done) != 1 || len(notDone) != 2 {
		t.Fatalf("expected 1/2, got %d/%d", len(done), len(notDone))
	}
	if done[0].Text != DefaultTasks[1] {
		t.Fatalf("wrong done task: %q", done[0].Text)
	}
}
