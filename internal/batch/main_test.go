package batch

import (
	"os"
	"testing"

	"github.com/amudkip/uimbatch/internal/logger"
)

func TestMain(m *testing.M) {
	// The pipelines log as they run; keep the test console quiet.
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
