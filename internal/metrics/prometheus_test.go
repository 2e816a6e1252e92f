package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"martianrobots/internal/mars"
)

func TestObserveAndWrite(t *testing.T) {
	run := NewRun()
	run.Observe(mars.Stats{Robots: 3, Lost: 1, Executed: 20, Skipped: 4, Saved: 1}, 1)

	path := filepath.Join(t.TempDir(), "mars.prom")
	if err := run.WriteTextfile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		`martianrobots_robots_total{outcome="lost"} 1`,
		`martianrobots_robots_total{outcome="safe"} 2`,
		`martianrobots_instructions_total{result="executed"} 20`,
		`martianrobots_scent_marks 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}
