package version

import "testing"

func TestFullString(t *testing.T) {
	orig, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = orig, origCommit }()

	Version = "dev"
	if got := FullString(); got != "hookcfg development version" {
		t.Errorf("FullString() = %q", got)
	}

	Version, GitCommit = "1.2.0", "abc1234"
	if got := FullString(); got != "hookcfg 1.2.0 (abc1234)" {
		t.Errorf("FullString() = %q", got)
	}
	if got := Info()["version"]; got != "1.2.0" {
		t.Errorf("Info()[version] = %q", got)
	}
}
