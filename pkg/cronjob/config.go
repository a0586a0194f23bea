package cronjob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/cleaner"
)

// suspendedEntryID 表示任务当前没有挂在调度器上
const suspendedEntryID = -1

// AddCronJob 把一个任务挂到调度器上并返回条目ID
func (cm *CronJobManager) AddCronJob(
	name, spec string,
	jobType model.CronJobType,
	jobConfig datatypes.JSON,
) (cron.EntryID, error) {
	f, err := cm.newCronJobFunc(name, jobType, jobConfig)
	if err != nil {
		klog.Error(err)
		return suspendedEntryID, err
	}

	entryID, err := cm.cron.AddFunc(spec, f)
	if err != nil {
		err = fmt.Errorf("CronJobManager.AddCronJob: schedule %s with spec %q: %w", name, spec, err)
		klog.Error(err)
		return suspendedEntryID, err
	}
	return entryID, nil
}

func (cm *CronJobManager) newCronJobFunc(name string, jobType model.CronJobType, jobConfig datatypes.JSON) (cron.FuncJob, error) {
	switch jobType {
	case model.CronJobTypeCleanerFunc:
		return cleaner.GetWrapCleanerFunc(name, cm.cleanerClients, jobConfig)
	default:
		return nil, fmt.Errorf("unsupported cron job type: %s", jobType)
	}
}

// UpdateJobConfig 在一个事务里更新任务配置并同步调度器状态。
// 配置行持行锁，调度器操作由 cronMutex 串行化。
func (cm *CronJobManager) UpdateJobConfig(
	ctx context.Context,
	name string,
	jobType *model.CronJobType,
	spec *string,
	suspend *bool,
	config *string,
) error {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()

	return cm.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := cm.lockJobConfig(tx, name)
		if err != nil {
			return err
		}
		update := cm.prepareUpdateConfig(cur, jobType, spec, suspend, config)

		// 没有携带 suspend 字段时只落库，不动调度器
		if suspend == nil {
			return cm.saveJobConfig(tx, name, cur, update)
		}

		if *suspend {
			return cm.suspendJob(tx, name, cur, update)
		}
		return cm.rescheduleJob(tx, name, cur, update)
	})
}

// lockJobConfig 取出配置行并加行锁，直到事务结束
func (cm *CronJobManager) lockJobConfig(tx *gorm.DB, name string) (*model.CronJobConfig, error) {
	cur := &model.CronJobConfig{}
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(cur).Error
	if err != nil {
		err = fmt.Errorf("CronJobManager.lockJobConfig: load %s: %w", name, err)
		klog.Error(err)
		return nil, err
	}
	return cur, nil
}

// prepareUpdateConfig 从当前配置出发，套上调用方显式给出的字段
func (cm *CronJobManager) prepareUpdateConfig(
	cur *model.CronJobConfig,
	jobType *model.CronJobType,
	spec *string,
	suspend *bool,
	config *string,
) *model.CronJobConfig {
	update := &model.CronJobConfig{
		Name:    cur.Name,
		Type:    cur.Type,
		Spec:    cur.Spec,
		Suspend: cur.Suspend,
		Config:  cur.Config,
	}
	if jobType != nil {
		update.Type = *jobType
	}
	if spec != nil && *spec != "" {
		update.Spec = *spec
	}
	if suspend != nil {
		update.Suspend = suspend
	}
	if config != nil && *config != "" {
		update.Config = datatypes.JSON(*config)
	}
	return update
}

func (cm *CronJobManager) saveJobConfig(tx *gorm.DB, name string, cur, update *model.CronJobConfig) error {
	if err := tx.Model(cur).Where("name = ?", name).Updates(update).Error; err != nil {
		err = fmt.Errorf("CronJobManager.saveJobConfig: save %s: %w", name, err)
		klog.Error(err)
		return err
	}
	return nil
}

// suspendJob 先落库再摘除调度条目，落库失败时调度器保持原状
func (cm *CronJobManager) suspendJob(tx *gorm.DB, name string, cur, update *model.CronJobConfig) error {
	oldEntryID := cur.EntryID
	update.EntryID = suspendedEntryID
	if err := cm.saveJobConfig(tx, name, cur, update); err != nil {
		return err
	}
	if oldEntryID != suspendedEntryID {
		cm.cron.Remove(cron.EntryID(oldEntryID))
	}
	return nil
}

// rescheduleJob 把任务以新配置重新挂载。旧条目先摘除，
// 否则同名任务会被调度两次。
func (cm *CronJobManager) rescheduleJob(tx *gorm.DB, name string, cur, update *model.CronJobConfig) error {
	active := cur.EntryID != suspendedEntryID
	if active && !cm.jobNeedsUpdate(cur, update) {
		// 已在调度中且调度层面没有变化，只落库
		update.EntryID = cur.EntryID
		return cm.saveJobConfig(tx, name, cur, update)
	}
	if active {
		cm.cron.Remove(cron.EntryID(cur.EntryID))
	}

	entryID, err := cm.AddCronJob(name, update.Spec, update.Type, update.Config)
	if err != nil {
		return err
	}
	update.EntryID = int(entryID)
	if err := cm.saveJobConfig(tx, name, cur, update); err != nil {
		// 落库失败时撤掉刚挂上的条目，避免孤儿调度
		cm.cron.Remove(entryID)
		return err
	}
	return nil
}

// jobNeedsUpdate 判断两份配置在调度层面是否等价
func (cm *CronJobManager) jobNeedsUpdate(cur, update *model.CronJobConfig) bool {
	if cur.Type != update.Type {
		return true
	}
	if cur.Spec != update.Spec {
		return true
	}
	if update.Config != nil && !bytes.Equal(cur.Config, update.Config) {
		return true
	}
	return false
}

// SyncCronJob 启动调度器并把库里所有未暂停的任务挂载上去，
// 挂载后的条目ID回写数据库。单个任务失败不影响其余任务。
func (cm *CronJobManager) SyncCronJob() {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()

	cm.cron.Start()

	var configs []*model.CronJobConfig
	if err := cm.DB.Where("suspend = ?", false).Find(&configs).Error; err != nil {
		klog.Errorf("CronJobManager.SyncCronJob: load cron job configs: %v", err)
		return
	}
	klog.Infof("CronJobManager.SyncCronJob: loaded %d non-suspended cron jobs", len(configs))

	for _, conf := range configs {
		entryID, err := cm.AddCronJob(conf.Name, conf.Spec, conf.Type, conf.Config)
		if err != nil {
			klog.Errorf("CronJobManager.SyncCronJob: schedule %s: %v", conf.Name, err)
			continue
		}
		if int(entryID) == conf.EntryID {
			continue
		}
		err = cm.DB.
			Model(&model.CronJobConfig{}).
			Where("name = ?", conf.Name).
			Update("entry_id", int(entryID)).
			Error
		if err != nil {
			klog.Errorf("CronJobManager.SyncCronJob: save entry id of %s: %v", conf.Name, err)
		}
	}
	klog.Info("CronJobManager.SyncCronJob: cron scheduler started")
}

// GetAllCronJobs 返回全部任务配置，按名称排序保证管理端列表稳定
func (cm *CronJobManager) GetAllCronJobs(ctx context.Context) ([]*model.CronJobConfig, error) {
	var configs []*model.CronJobConfig
	if err := cm.DB.WithContext(ctx).Order("name").Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("CronJobManager.GetAllCronJobs: %w", err)
	}
	return configs, nil
}

// StopCron 停止调度器，正在执行的任务跑完当前一轮
func (cm *CronJobManager) StopCron() {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()
	cm.cron.Stop()
}
