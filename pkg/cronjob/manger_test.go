package cronjob

import (
	"testing"

	. "github.com/bytedance/mockey"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/datatypes"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/cleaner"
)

func TestCronJob(t *testing.T) {
	t.Run("newCronJobFunc", func(t *testing.T) {
		manager := NewCronJobManager(nil, nil)
		PatchConvey("newCronJobFunc", t, func() {
			jobName := cleaner.REMIND_STALE_ISSUE_JOB
			jobConfig := datatypes.JSON(`{"staleDays": 7}`)
			jobFunc, err := manager.newCronJobFunc(jobName, model.CronJobTypeCleanerFunc, jobConfig)
			So(err, ShouldBeNil)
			So(jobFunc, ShouldNotBeNil)

			jobName = cleaner.RETRY_PENDING_ALERT_JOB
			jobConfig = datatypes.JSON(`{"olderThanMinutes": 30}`)
			jobFunc, err = manager.newCronJobFunc(jobName, model.CronJobTypeCleanerFunc, jobConfig)
			So(err, ShouldBeNil)
			So(jobFunc, ShouldNotBeNil)

			jobName = cleaner.CLEAN_CRON_RECORD_JOB
			jobConfig = datatypes.JSON(`{"keepDays": 30}`)
			jobFunc, err = manager.newCronJobFunc(jobName, model.CronJobTypeCleanerFunc, jobConfig)
			So(err, ShouldBeNil)
			So(jobFunc, ShouldNotBeNil)

			jobName = "unknown"
			jobConfig = datatypes.JSON(`{"unknown": "unknown"}`)
			jobFunc, err = manager.newCronJobFunc(jobName, model.CronJobTypeCleanerFunc, jobConfig)
			So(err, ShouldNotBeNil)
			So(jobFunc, ShouldBeNil)
		})
	})

	t.Run("prepareUpdateConfig", func(t *testing.T) {
		PatchConvey("prepareUpdateConfig", t, func() {
			manager := NewCronJobManager(nil, nil)
			cur := &model.CronJobConfig{
				Name:    cleaner.REMIND_STALE_ISSUE_JOB,
				Type:    model.CronJobTypeCleanerFunc,
				Spec:    "0 9 * * *",
				Suspend: ptr.To(false),
				Config:  datatypes.JSON(`{"staleDays": 7}`),
			}

			// 全量更新：所有字段都以请求里的为准
			update := manager.prepareUpdateConfig(
				cur,
				ptr.To(model.CronJobTypeCleanerFunc),
				ptr.To("30 8 * * 1-5"),
				ptr.To(true),
				ptr.To(`{"staleDays": 14}`),
			)
			So(update, ShouldNotBeNil)
			So(update.Name, ShouldEqual, cleaner.REMIND_STALE_ISSUE_JOB)
			So(update.Spec, ShouldEqual, "30 8 * * 1-5")
			So(*update.Suspend, ShouldEqual, true)
			So(update.Config, ShouldEqual, datatypes.JSON(`{"staleDays": 14}`))

			// 只改 suspend：其余字段保持旧值，空串的 spec 同样不生效
			update = manager.prepareUpdateConfig(cur, nil, ptr.To(""), ptr.To(true), nil)
			So(update.Type, ShouldEqual, cur.Type)
			So(update.Spec, ShouldEqual, "0 9 * * *")
			So(*update.Suspend, ShouldEqual, true)
			So(update.Config, ShouldEqual, cur.Config)
		})
	})
}
