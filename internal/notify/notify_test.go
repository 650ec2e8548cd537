package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrefixesByLevel(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{W: &buf}

	w.Notify(LevelInfo, "已登录")
	w.Notify(LevelError, "操作失败")

	require.Equal(t, "[info] 已登录\n[error] 操作失败\n", buf.String())
}

func TestDiscard_DropsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		Discard{}.Notify(LevelError, "ignored")
	})
}
