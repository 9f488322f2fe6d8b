package commands

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRestartableRunner_RestartsOnError(t *testing.T) {
	var calls atomic.Int32
	r := NewRestartableRunner(RunnerConfig{Name: "test", RestartBackoff: time.Millisecond}, func(ctx context.Context) error {
		switch calls.Add(1) {
		case 1:
			return errors.New("first failure")
		case 2:
			panic("second failure")
		}
		<-ctx.Done()
		return nil
	})

	if err := r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := r.Start(context.Background()); err == nil {
		t.Error("Expected error when starting twice")
	}

	waitFor(t, "third run", func() bool { return calls.Load() >= 3 })
	if r.RestartCount() != 2 {
		t.Errorf("Expected 2 restarts, got %d", r.RestartCount())
	}
	if !r.IsRunning() {
		t.Error("Expected runner to be running")
	}

	if err := r.Stop(time.Second); err != nil {
		t.Fatal(err)
	}
	if r.IsRunning() {
		t.Error("Expected runner to be stopped")
	}
}

func TestRestartableRunner_MaxRestarts(t *testing.T) {
	r := NewRestartableRunner(RunnerConfig{Name: "test", MaxRestarts: 3, RestartBackoff: time.Millisecond}, func(ctx context.Context) error {
		return errors.New("always failing")
	})
	if err := r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-r.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Expected runner to give up")
	}
	if r.RestartCount() != 3 || r.LastError() == nil {
		t.Errorf("Expected 3 restarts and an error, got %d, %v", r.RestartCount(), r.LastError())
	}
	if r.IsRunning() {
		t.Error("Expected runner to be stopped")
	}
}

func TestRestartableRunner_CleanExit(t *testing.T) {
	r := NewRestartableRunner(RunnerConfig{Name: "test"}, func(ctx context.Context) error {
		return nil
	})
	if err := r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	<-r.Done()
	if r.RestartCount() != 0 || r.LastError() != nil {
		t.Errorf("Expected clean exit, got %d restarts, %v", r.RestartCount(), r.LastError())
	}
}
