package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()
}

func TestWriteTextfile(t *testing.T) {
	FramesRendered.WithLabelValues("quiz", "tick").Inc()
	CandlesDrawn.Add(40)

	path := filepath.Join(t.TempDir(), "patternlab.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	out := string(data)
	for _, name := range []string{
		"patternlab_chart_frames_rendered_total",
		"patternlab_chart_candles_drawn_total",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("textfile missing %s", name)
		}
	}
}
