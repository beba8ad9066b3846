package pagecursor

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func Test_LogrusWarnFunc(t *testing.T) {
	logger, hook := test.NewNullLogger()

	planner := NewPlanner[int]().WithWarnFunc(LogrusWarnFunc(logger))
	_, err := planner.Plan(
		context.Background(),
		PageRequest{CurrentPage: 1, PageSize: 10, ButtonCount: 2, TotalCount: 70},
		&recordingFetcher{},
	)
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "buttonCount of 2 passed to page cursors, but using 3 instead for the pagination logic", entry.Message)
	require.Equal(t, WarnButtonCountAdjusted, entry.Data["code"])
	require.Equal(t, 2, entry.Data["requested"])
	require.Equal(t, 3, entry.Data["applied"])
}

func Test_LogrusWarnFunc_NilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		LogrusWarnFunc(nil)(buttonCountWarning(2, 3))
	})
}
