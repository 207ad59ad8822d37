package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/numenta/taurus-monitors/internal/install"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func installedAt(root string) install.Locator {
	return func() (string, error) { return root, nil }
}

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		home string
		want string
	}{
		{
			name: "unset falls back to install conf",
			env:  map[string]string{},
			home: "/opt/app",
			want: "/opt/app/conf",
		},
		{
			name: "empty falls back to install conf",
			env:  map[string]string{EnvConfPath: ""},
			home: "/opt/app",
			want: "/opt/app/conf",
		},
		{
			name: "override wins regardless of install",
			env:  map[string]string{EnvConfPath: "/etc/app/config"},
			home: "/opt/app",
			want: "/etc/app/config",
		},
		{
			name: "override is kept verbatim",
			env:  map[string]string{EnvConfPath: "/etc/app//config/"},
			home: "/srv/taurus",
			want: "/etc/app//config/",
		},
		{
			name: "override with surrounding spaces is kept",
			env:  map[string]string{EnvConfPath: "/etc/app/config "},
			home: "/opt/app",
			want: "/etc/app/config ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := ResolvePaths(lookupFrom(tt.env), installedAt(tt.home))
			if err != nil {
				t.Fatalf("ResolvePaths returned error: %v", err)
			}
			if paths.ConfDir != tt.want {
				t.Fatalf("expected conf dir %q, got %q", tt.want, paths.ConfDir)
			}
			if paths.Home != tt.home {
				t.Fatalf("expected home %q, got %q", tt.home, paths.Home)
			}
			if !filepath.IsAbs(paths.ConfDir) {
				t.Fatalf("expected absolute conf dir, got %q", paths.ConfDir)
			}
		})
	}
}

func TestResolvePathsWhitespaceOverrideIsUsed(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd returned error: %v", err)
	}

	paths, err := ResolvePaths(lookupFrom(map[string]string{EnvConfPath: "   "}), installedAt("/opt/app"))
	if err != nil {
		t.Fatalf("ResolvePaths returned error: %v", err)
	}

	if want := filepath.Join(wd, "   "); paths.ConfDir != want {
		t.Fatalf("expected whitespace override %q, got %q", want, paths.ConfDir)
	}
	if paths.ConfDir == "/opt/app/conf" {
		t.Fatalf("whitespace override must not fall back to install conf")
	}
}

func TestResolvePathsRelativeOverrideIsAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd returned error: %v", err)
	}

	paths, err := ResolvePaths(lookupFrom(map[string]string{EnvConfPath: "local/conf"}), installedAt("/opt/app"))
	if err != nil {
		t.Fatalf("ResolvePaths returned error: %v", err)
	}
	if want := filepath.Join(wd, "local", "conf"); paths.ConfDir != want {
		t.Fatalf("expected %q, got %q", want, paths.ConfDir)
	}
}

func TestResolvePathsInstallFailure(t *testing.T) {
	failing := func() (string, error) {
		return "", install.ErrUnresolved
	}

	_, err := ResolvePaths(lookupFrom(map[string]string{EnvConfPath: "/etc/app/config"}), failing)
	if !errors.Is(err, install.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestResolvePathsRejectsRelativeInstallRoot(t *testing.T) {
	_, err := ResolvePaths(lookupFrom(nil), installedAt("opt/app"))
	if !errors.Is(err, install.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestResolvePathsFromProcessEnvironment(t *testing.T) {
	t.Setenv(EnvConfPath, "/etc/taurus/conf")

	paths, err := ResolvePaths(os.LookupEnv, installedAt("/opt/app"))
	if err != nil {
		t.Fatalf("ResolvePaths returned error: %v", err)
	}
	if paths.ConfDir != "/etc/taurus/conf" {
		t.Fatalf("expected env conf dir, got %q", paths.ConfDir)
	}
}

func TestDefaultPathsComputedOnce(t *testing.T) {
	first, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths returned error: %v", err)
	}
	if !filepath.IsAbs(first.Home) || !filepath.IsAbs(first.ConfDir) {
		t.Fatalf("expected absolute paths, got %+v", first)
	}

	t.Setenv(EnvConfPath, filepath.Join(t.TempDir(), "elsewhere"))

	second, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable paths, got %+v then %+v", first, second)
	}
}

func TestPathsFile(t *testing.T) {
	paths := Paths{Home: "/opt/app", ConfDir: "/opt/app/conf"}
	if got := paths.File(DefaultFileName); got != "/opt/app/conf/taurus-monitors.yaml" {
		t.Fatalf("unexpected file path %q", got)
	}
}
