package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"katas-server/internal/util"
)

// UpdateEnv rewrites every snapshot instead of comparing against it when set to "1"
const UpdateEnv = "KATAS_UPDATE_SNAPSHOTS"

// Validate compares output against testdata/<name>.golden
func Validate(t *testing.T, name string, output string, msgAndArgs ...interface{}) {
	t.Helper()

	filename := filepath.Join("testdata", name+".golden")

	if util.Getenv(UpdateEnv, "") == "1" {
		write(t, filename, output)
		return
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("could not read snapshot: %v (run with %s=1 to create it)", err, UpdateEnv)
	}

	if !assert.Equal(t, string(expects), output, msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func write(t *testing.T, filename string, output string) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, []byte(output), 0644); err != nil {
		t.Fatal(err)
	}
}
