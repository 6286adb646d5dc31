package integration_test

import (
	"testing"

	"github.com/lagreeflow/lagree/test/integration/harness"
)

func TestVersionReportsBuildStamp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, harness.BuildVersion)
}
