package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func write(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := FindAndLoad(deep)
	if err != nil {
		t.Fatalf("no file: %v", err)
	}
	if path != "" {
		// Something above the temp dir has a calc.toml.
		t.Skipf("found unrelated config %s", path)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("want defaults, got %+v", cfg)
	}

	want := write(t, filepath.Join(root, "a"), "[eval]\nmax_depth = 10\n")
	cfg, path, err = FindAndLoad(deep)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if path != want {
		t.Errorf("wrong path: want %s, got %s", want, path)
	}
	if cfg.Eval.MaxDepth != 10 {
		t.Errorf("wrong max_depth %d", cfg.Eval.MaxDepth)
	}
	if cfg.Output.ErrorText != "Error" || cfg.Server.Listen != ":8080" {
		t.Errorf("omitted settings lost defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    func(*Config)
		err     string
	}{
		{
			name:    "empty",
			content: "",
			want:    func(*Config) {},
		},
		{
			name: "all",
			content: `
[eval]
max_depth = 64

[output]
format = "%.3f"
plain = true
error_text = "Nope"

[server]
listen = "127.0.0.1:9000"
log_level = "debug"
`,
			want: func(c *Config) {
				c.Eval.MaxDepth = 64
				c.Output = OutputConfig{Format: "%.3f", Plain: true, ErrorText: "Nope"}
				c.Server = ServerConfig{Listen: "127.0.0.1:9000", LogLevel: "debug"}
			},
		},
		{name: "unknown", content: "[eval]\nmaxdepth = 3\n", err: "unknown keys eval.maxdepth"},
		{name: "depth", content: "[eval]\nmax_depth = 0\n", err: "max_depth must be positive"},
		{name: "plain", content: "[output]\nplain = true\nerror_text = \"\"\n", err: "error_text"},
		{name: "loglevel", content: "[server]\nlog_level = \"loud\"\n", err: "log_level"},
		{name: "syntax", content: "[eval\n", err: "toml"},
		{name: "type", content: "[eval]\nmax_depth = \"deep\"\n", err: "max_depth"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := write(t, t.TempDir(), c.content)
			cfg, err := Load(path)
			if c.err != "" {
				if err == nil || !strings.Contains(err.Error(), c.err) {
					t.Errorf("want error containing %q, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to load: %v", err)
			}
			want := DefaultConfig()
			c.want(want)
			if !reflect.DeepEqual(cfg, want) {
				t.Errorf("want %+v, got %+v", want, cfg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error, got %v", err)
	}
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()
	if s := cfg.Result(2); s != "2" {
		t.Errorf("default result: want 2, got %s", s)
	}
	_, err := calc.EvalString("1/0")
	if s := cfg.Error(err); s != "division by zero in /" {
		t.Errorf("default error: got %s", s)
	}
	cfg.Output.Format = "%.2f"
	cfg.Output.Plain = true
	if s := cfg.Result(2); s != "2.00" {
		t.Errorf("formatted result: want 2.00, got %s", s)
	}
	if s := cfg.Error(err); s != "Error" {
		t.Errorf("plain error: want Error, got %s", s)
	}
}
