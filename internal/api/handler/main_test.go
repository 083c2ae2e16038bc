package handler

import (
	"os"
	"testing"

	"github.com/portalcondominio/clube-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}
