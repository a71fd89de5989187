package api

import (
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.SetLevel(log.WarnLevel)
	goleak.VerifyTestMain(m)
}
