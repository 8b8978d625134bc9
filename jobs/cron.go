package jobs

import (
	"context"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// StatsRefresher định nghĩa interface cho việc làm mới số liệu dashboard
type StatsRefresher interface {
	RefreshAdminStats(ctx context.Context) error
}

var statsRefresher StatsRefresher

// SetStatsRefresher thiết lập implementation cho StatsRefresher
func SetStatsRefresher(refresher StatsRefresher) {
	statsRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày, tính lại số liệu dashboard
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang làm mới số liệu dashboard lúc: %v", time.Now())
		if statsRefresher == nil {
			log.Printf("Lỗi: StatsRefresher chưa được thiết lập")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := statsRefresher.RefreshAdminStats(ctx); err != nil {
			log.Printf("Lỗi khi làm mới số liệu dashboard: %v", err)
			return
		}

		if m != nil {
			m.Broadcast([]byte("Số liệu dashboard đã được cập nhật"))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
