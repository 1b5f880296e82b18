package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test_document.txt")
	if err := os.WriteFile(name, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := strings.Repeat("Lorem ipsum dolor sit amet, ∂ö€😀 consectetur.\n", 40)
	name := writeFile(t, []byte(text))
	rope, err := Load(context.Background(), name, &Options{FragmentLen: 7, Prefetch: 2})
	if err != nil {
		t.Fatal(err.Error())
	}
	if rope.String() != text {
		t.Errorf("loaded text differs from file content")
	}
	if rope.Len() != uint64(len([]rune(text))) {
		t.Errorf("expected length %d, is %d", len([]rune(text)), rope.Len())
	}
	if ch, err := rope.CharAt(28); err != nil || ch != '∂' {
		t.Errorf("expected '∂' at 28, got %q (err=%v)", ch, err)
	}
	if rope.Height() > 12 {
		t.Errorf("expected loaded rope to be rebuilt, height is %d", rope.Height())
	}
}

func TestLoadDefaults(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	name := writeFile(t, []byte("short"))
	rope, err := Load(context.Background(), name, nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	if rope.String() != "short" {
		t.Errorf("expected 'short', got %q", rope.String())
	}
	empty := writeFile(t, nil)
	rope, err = Load(context.Background(), empty, nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !rope.IsVoid() {
		t.Errorf("expected empty file to load as void rope")
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := Load(context.Background(), t.TempDir(), nil); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	name := writeFile(t, []byte{'a', 'b', 0xff, 'c'})
	if _, err := Load(context.Background(), name, nil); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	name := writeFile(t, []byte(strings.Repeat("x", 10000)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, name, &Options{FragmentLen: 1}); err == nil {
		t.Errorf("expected loading with cancelled context to fail")
	}
}

func TestLoadCancelledWhileReading(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name := writeFile(t, []byte(strings.Repeat("0123456789abcdef", 1<<17)))
	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Millisecond)
		_, err := Load(ctx, name, &Options{FragmentLen: 1, Prefetch: 1})
		cancel()
		if err == nil {
			t.Fatalf("expected load %d to be cancelled", i)
		}
	}
	// reading goroutines have to terminate after cancellation
	deadline := time.Now().Add(5 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := runtime.NumGoroutine(); n > before {
		buf := make([]byte, 1<<16)
		t.Logf("%s", buf[:runtime.Stack(buf, true)])
		t.Errorf("goroutines leaked: %d before loading, %d after", before, n)
	}
}
