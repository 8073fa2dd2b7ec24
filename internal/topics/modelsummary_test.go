//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfeldkamp/TopicRiver/internal/lnch"
)

func capturestdout(t *testing.T, fn func()) string {
	t.Helper()
	saved := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	fn()
	os.Stdout = saved
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestReportModelIsVisible(t *testing.T) {
	saved := lnch.Config
	defer func() {
		lnch.Config = saved
		lnch.RebindMessenger()
	}()

	m := sharefixture()

	// the summary goes out at NOTE; a configured level of 2 must surface it
	// through the shared messenger the package grabbed at init
	lnch.Config.LogLevel = 2
	lnch.RebindMessenger()

	out := capturestdout(t, func() { ReportModel(m) })
	assert.Contains(t, out, "topic model of 3 documents")
	assert.Contains(t, out, "1: alpha")
	assert.Contains(t, out, "2: beta")

	// and the default level of 0 keeps it quiet
	lnch.Config.LogLevel = 0
	lnch.RebindMessenger()

	out = capturestdout(t, func() { ReportModel(m) })
	assert.Empty(t, out)
}
