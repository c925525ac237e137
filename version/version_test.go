package version

import (
	"strings"
	"testing"
)

func TestReadVersionUnknownPath(t *testing.T) {
	t.Parallel()

	path := "example.com/not/a/real/module"
	if actual := ReadVersion(path); actual != path {
		t.Errorf("ReadVersion(%q) = %q, expected the bare path", path, actual)
	}
}

func TestMain_NonEmpty(t *testing.T) {
	t.Parallel()

	if v := Main(); strings.TrimSpace(v) == "" {
		t.Error("Main() returned an empty version")
	}
}
