package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"tool"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestArgs(t *testing.T) {
	withArgs(t, "--config", "a.yaml", "--dark", "history.csv", "--out=chart.svg", "extra")
	if !HasArg("--dark") || HasArg("--replay") {
		t.Error("HasArg misreported flags")
	}
	if v := ArgValue("--config", ""); v != "a.yaml" {
		t.Errorf("--config: got %q", v)
	}
	if v := ArgValue("--out", ""); v != "chart.svg" {
		t.Errorf("--out: got %q", v)
	}
	if v := ArgValue("--missing", "fallback"); v != "fallback" {
		t.Errorf("--missing: got %q", v)
	}
	if p := Positional(); !reflect.DeepEqual(p, []string{"history.csv", "extra"}) {
		t.Errorf("unexpected positional args %v", p)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) || Exists(filepath.Join(dir, "nothing")) {
		t.Error("Exists gave the wrong answer")
	}
}
