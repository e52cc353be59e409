package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
)

// LedgerAuditor định nghĩa interface cho việc kiểm tra sổ cái định kỳ
type LedgerAuditor interface {
	Run(ctx context.Context)
}

// InitCronJobs đăng ký job kiểm tra sổ cái theo lịch và khởi động cron
func InitCronJobs(c *cron.Cron, schedule string, auditor LedgerAuditor) (cron.EntryID, error) {
	id, err := c.AddFunc(schedule, func() {
		auditor.Run(context.Background())
	})
	if err != nil {
		return 0, err
	}

	c.Start()
	return id, nil
}
