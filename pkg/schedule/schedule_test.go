package schedule_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/platter/pkg/schedule"
)

func TestRunRegistersEntries(t *testing.T) {
	schedule.Flush()
	defer schedule.Flush()

	schedule.Every(2).Hours().Name("promotions.expire").WithoutOverlapping().Run(func() {})
	schedule.Daily().Name("daily.report").Run(func() {})

	names := schedule.List()
	if len(names) != 2 {
		t.Fatalf("entries = %d, want 2", len(names))
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["promotions.expire"] || !found["daily.report"] {
		t.Errorf("names = %v", names)
	}
}

func TestUnnamedEntriesGetGeneratedIDs(t *testing.T) {
	schedule.Flush()
	defer schedule.Flush()

	schedule.EveryMinute().Run(func() {})

	names := schedule.List()
	if len(names) != 1 || names[0] == "" {
		t.Fatalf("names = %v, want one generated id", names)
	}
}

func TestSchedulerDispatchesDueTasks(t *testing.T) {
	schedule.Flush()
	defer schedule.Flush()

	var runs atomic.Int32
	schedule.Every(1).Seconds().Name("tick").Run(func() {
		runs.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	schedule.Start(ctx)

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("scheduled task never ran")
		}
		time.Sleep(50 * time.Millisecond)
	}
}
