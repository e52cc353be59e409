package jobs

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAuditor struct {
	runs atomic.Int32
}

func (a *countingAuditor) Run(ctx context.Context) {
	a.runs.Add(1)
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	defer c.Stop()
	auditor := &countingAuditor{}

	id, err := InitCronJobs(c, "@hourly", auditor)
	require.NoError(t, err)

	entry := c.Entry(id)
	require.True(t, entry.Valid())
	entry.Job.Run()
	assert.Equal(t, int32(1), auditor.runs.Load())
}

func TestInitCronJobs_InvalidSchedule(t *testing.T) {
	c := cron.New()
	defer c.Stop()

	_, err := InitCronJobs(c, "not a schedule", &countingAuditor{})
	assert.Error(t, err)
}
