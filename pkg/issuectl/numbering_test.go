package issuectl

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
)

// TestConcurrentNumbering 需要真实数据库，设置 ORBIT_TEST_DSN 后运行，例如
// "host=localhost user=postgres password=postgres dbname=orbit_test port=5432 sslmode=disable"
func TestConcurrentNumbering(t *testing.T) {
	dsn := os.Getenv("ORBIT_TEST_DSN")
	if dsn == "" {
		t.Skip("ORBIT_TEST_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.UserProject{}, &model.Issue{}))

	suffix := time.Now().UnixNano()
	owner := &model.User{
		Name:   fmt.Sprintf("numbering-%d", suffix),
		Email:  fmt.Sprintf("numbering-%d@example.com", suffix),
		Role:   model.RoleManager,
		Status: model.StatusActive,
	}
	require.NoError(t, db.Create(owner).Error)
	project := &model.Project{
		Name:    "numbering test",
		Key:     fmt.Sprintf("N%d", suffix%100_000_000),
		Status:  model.ProjectActive,
		OwnerID: owner.ID,
	}
	require.NoError(t, db.Create(project).Error)
	defer func() {
		db.Unscoped().Where("project_id = ?", project.ID).Delete(&model.Issue{})
		db.Unscoped().Delete(project)
		db.Unscoped().Delete(owner)
	}()

	ctrl := NewIssueController(db, nil)

	// 新项目的第一个 Issue
	first, err := ctrl.Create(context.Background(), &CreateRequest{
		ProjectID:  project.ID,
		Title:      "  Fix bug  ",
		ReporterID: owner.ID,
	})
	require.NoError(t, err)
	require.Equal(t, project.Key+"-1", first.Key())
	require.Equal(t, model.IssueStatusBacklog, first.Status)
	require.Equal(t, model.PriorityMedium, first.Priority)
	require.Equal(t, "Fix bug", first.Title)

	// 并发创建只依赖项目行锁保证编号连续且不重复
	const workers = 8
	const perWorker = 4
	var wg sync.WaitGroup
	createErrs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := ctrl.Create(context.Background(), &CreateRequest{
					ProjectID:  project.ID,
					Title:      fmt.Sprintf("issue %d-%d", worker, j),
					ReporterID: owner.ID,
				})
				if err != nil {
					createErrs <- err
				}
			}
		}(i)
	}
	wg.Wait()
	close(createErrs)
	for err := range createErrs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	var numbers []int
	require.NoError(t, db.Model(&model.Issue{}).
		Where("project_id = ?", project.ID).
		Order("number").
		Pluck("number", &numbers).Error)
	require.Len(t, numbers, workers*perWorker+1)
	for i, number := range numbers {
		require.Equal(t, i+1, number)
	}
}

// TestCreateRejectsDeactivatedAssignee 同样依赖 ORBIT_TEST_DSN 指向的真实数据库
func TestCreateRejectsDeactivatedAssignee(t *testing.T) {
	dsn := os.Getenv("ORBIT_TEST_DSN")
	if dsn == "" {
		t.Skip("ORBIT_TEST_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.UserProject{}, &model.Issue{}))

	suffix := time.Now().UnixNano()
	owner := &model.User{
		Name:   fmt.Sprintf("reporter-%d", suffix),
		Email:  fmt.Sprintf("reporter-%d@example.com", suffix),
		Role:   model.RoleManager,
		Status: model.StatusActive,
	}
	require.NoError(t, db.Create(owner).Error)
	former := &model.User{
		Name:   fmt.Sprintf("former-%d", suffix),
		Email:  fmt.Sprintf("former-%d@example.com", suffix),
		Role:   model.RoleUser,
		Status: model.StatusInactive,
	}
	require.NoError(t, db.Create(former).Error)
	project := &model.Project{
		Name:    "assignee validation",
		Key:     fmt.Sprintf("D%d", suffix%100_000_000),
		Status:  model.ProjectActive,
		OwnerID: owner.ID,
	}
	require.NoError(t, db.Create(project).Error)
	defer func() {
		db.Unscoped().Where("project_id = ?", project.ID).Delete(&model.Issue{})
		db.Unscoped().Delete(project)
		db.Unscoped().Delete(former)
		db.Unscoped().Delete(owner)
	}()

	ctrl := NewIssueController(db, nil)

	_, err = ctrl.Create(context.Background(), &CreateRequest{
		ProjectID:  project.ID,
		Title:      "handover task",
		ReporterID: owner.ID,
		AssigneeID: ptr.To(former.ID),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))

	// 指向不存在用户的指派同样拒绝
	_, err = ctrl.Create(context.Background(), &CreateRequest{
		ProjectID:  project.ID,
		Title:      "handover task",
		ReporterID: owner.ID,
		AssigneeID: ptr.To(uint(1<<31 - 1)),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}
