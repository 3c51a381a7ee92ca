package gmath

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	ctx := context.Background()

	tests := []struct {
		name  string
		check func() error
	}{
		{"disabled at every level", func() error {
			for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
				if h.Enabled(ctx, level) {
					return fmt.Errorf("Enabled(%v) = true", level)
				}
			}
			return nil
		}},
		{"handle drops records", func() error {
			return h.Handle(ctx, slog.NewRecord(time.Time{}, slog.LevelDebug, "gmath: inverting singular matrix", 0))
		}},
		{"attrs stay silent", func() error {
			if got := h.WithAttrs([]slog.Attr{slog.Float64("det", 0)}); got != h {
				return fmt.Errorf("WithAttrs returned %T", got)
			}
			return nil
		}},
		{"groups stay silent", func() error {
			if got := h.WithGroup("decompose"); got != h {
				return fmt.Errorf("WithGroup returned %T", got)
			}
			return nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// Default logger must be disabled at all levels.
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)

	got := Logger()
	if got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// Verify output is captured.
	got.Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	// First set a real logger.
	SetLogger(slog.Default())

	// Then set nil to restore silence.
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSingularInvertLogsAtDebug(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if got := Invert(Zero); got != Zero {
		t.Fatalf("Invert(Zero) = %v, want Zero", got)
	}
	if !strings.Contains(buf.String(), "singular matrix") {
		t.Errorf("expected debug record for singular matrix, got: %s", buf.String())
	}

	buf.Reset()
	_ = Invert(Identity)
	if buf.Len() != 0 {
		t.Errorf("Invert(Identity) logged: %s", buf.String())
	}
}

func TestDegenerateDecomposeAndBillboardLog(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	_, _, _ = Scaling(0, 1, 1).DecomposeMatrix()
	if !strings.Contains(buf.String(), "zero scale axis") {
		t.Errorf("expected zero scale record, got: %s", buf.String())
	}

	buf.Reset()
	p := V3(1, 1, 1)
	_ = Billboard(p, p, V3(0, 1, 0), V3(0, 0, 1))
	if !strings.Contains(buf.String(), "billboard") {
		t.Errorf("expected billboard fallback record, got: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	// Concurrent readers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			// Exercise the logger; must not panic.
			l.Debug("concurrent read")
		}()
	}

	// Concurrent writers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := Logger()
		_ = l
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	// Benchmark the hot path: calling a log method on a disabled logger.
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
