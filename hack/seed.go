// Usage: ORBIT_DEBUG_CONFIG_PATH=${PWD}/etc/debug-config.yaml go run hack/seed.go [seed-file]
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/datatypes"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/orbit/dao"
	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/dao/query"
	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/cleaner"
	"github.com/raids-lab/orbit/pkg/config"
	"github.com/raids-lab/orbit/pkg/issuectl"
)

type SeedFile struct {
	Users    []SeedUser    `yaml:"users"`
	Projects []SeedProject `yaml:"projects"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"` // guest/user/manager/admin，默认 user
}

type SeedProject struct {
	Name        string      `yaml:"name"`
	Key         string      `yaml:"key"`
	Description string      `yaml:"description"`
	Owner       string      `yaml:"owner"`
	Members     []string    `yaml:"members"`
	Issues      []SeedIssue `yaml:"issues"`
}

type SeedIssue struct {
	Title    string `yaml:"title"`
	Type     string `yaml:"type"`
	Status   string `yaml:"status"` // backlog/to_do/in_progress/done，默认 backlog
	Priority string `yaml:"priority"`
	Assignee string `yaml:"assignee"`
}

func main() {
	path := "hack/seed-data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("failed to read seed file: %w", err))
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		panic(fmt.Errorf("failed to parse seed file: %w", err))
	}

	db := query.GetDB()
	if err := dao.Migrate(db); err != nil {
		panic(fmt.Errorf("failed to migrate: %w", err))
	}

	ctx := context.Background()
	if err := ensureBootstrapAdmin(ctx); err != nil {
		panic(fmt.Errorf("failed to seed bootstrap admin: %w", err))
	}

	users := make(map[string]*model.User, len(seed.Users))
	for i := range seed.Users {
		user, err := ensureUser(ctx, &seed.Users[i])
		if err != nil {
			panic(fmt.Errorf("failed to seed user %s: %w", seed.Users[i].Name, err))
		}
		users[user.Name] = user
	}

	issueCtrl := issuectl.NewIssueController(db, alert.GetAlertMgr())
	created := 0
	for i := range seed.Projects {
		n, err := ensureProject(ctx, issueCtrl, &seed.Projects[i], users)
		if err != nil {
			panic(fmt.Errorf("failed to seed project %s: %w", seed.Projects[i].Key, err))
		}
		created += n
	}

	if err := ensureCronJobConfigs(ctx); err != nil {
		panic(fmt.Errorf("failed to seed cron job configs: %w", err))
	}

	fmt.Printf("Successfully seeded %d users, %d projects, %d issues\n", len(users), len(seed.Projects), created)
}

// ensureBootstrapAdmin 在配置了 seed.adminPassword 且库里还没有任何管理员时，
// 创建初始管理员账号，保证全新部署有账号可以登录
func ensureBootstrapAdmin(ctx context.Context) error {
	password := config.GetConfig().Seed.AdminPassword
	if password == "" {
		return nil
	}

	db := query.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:     "admin",
		Nickname: "Administrator",
		Email:    "admin@orbit.local",
		Password: ptr.To(string(hash)),
		Role:     model.RoleAdmin,
		Status:   model.StatusActive,
	}
	admin.Attributes = datatypes.NewJSONType(model.UserAttribute{
		Name:     admin.Name,
		Nickname: admin.Nickname,
		Email:    admin.Email,
	})
	return db.WithContext(ctx).Create(admin).Error
}

func ensureUser(ctx context.Context, su *SeedUser) (*model.User, error) {
	db := query.GetDB()
	user := &model.User{}
	err := db.WithContext(ctx).Where("name = ?", su.Name).First(user).Error
	if err == nil {
		return user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nickname := su.Nickname
	if nickname == "" {
		nickname = su.Name
	}
	user = &model.User{
		Name:     su.Name,
		Nickname: nickname,
		Email:    strings.ToLower(strings.TrimSpace(su.Email)),
		Password: ptr.To(string(hash)),
		Role:     parseRole(su.Role),
		Status:   model.StatusActive,
	}
	user.Attributes = datatypes.NewJSONType(model.UserAttribute{
		Name:     user.Name,
		Nickname: user.Nickname,
		Email:    user.Email,
	})
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func parseRole(role string) model.Role {
	switch role {
	case "guest":
		return model.RoleGuest
	case "manager":
		return model.RoleManager
	case "admin":
		return model.RoleAdmin
	default:
		return model.RoleUser
	}
}

func ensureProject(
	ctx context.Context,
	issueCtrl issuectl.IssueControllerInterface,
	sp *SeedProject,
	users map[string]*model.User,
) (int, error) {
	db := query.GetDB()
	key := model.NormalizeProjectKey(sp.Key)
	if err := model.ValidateProjectKey(key); err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.Project{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		// 项目已存在则跳过，保证脚本可以重复执行
		return 0, nil
	}

	owner, ok := users[sp.Owner]
	if !ok {
		return 0, fmt.Errorf("unknown owner %q", sp.Owner)
	}
	project := &model.Project{
		Name:        sp.Name,
		Key:         key,
		Description: sp.Description,
		Status:      model.ProjectActive,
		OwnerID:     owner.ID,
	}
	if err := db.WithContext(ctx).Create(project).Error; err != nil {
		return 0, err
	}

	for _, member := range sp.Members {
		user, ok := users[member]
		if !ok {
			return 0, fmt.Errorf("unknown member %q", member)
		}
		membership := &model.UserProject{
			UserID:    user.ID,
			ProjectID: project.ID,
			Role:      model.ProjectRoleDeveloper,
		}
		if err := db.WithContext(ctx).Create(membership).Error; err != nil {
			return 0, err
		}
	}

	created := 0
	for i := range sp.Issues {
		si := &sp.Issues[i]
		req := &issuectl.CreateRequest{
			ProjectID:  project.ID,
			Title:      si.Title,
			Type:       si.Type,
			Priority:   si.Priority,
			ReporterID: owner.ID,
		}
		if si.Assignee != "" {
			assignee, ok := users[si.Assignee]
			if !ok {
				return 0, fmt.Errorf("unknown assignee %q", si.Assignee)
			}
			req.AssigneeID = &assignee.ID
		}
		issue, err := issueCtrl.Create(ctx, req)
		if err != nil {
			return 0, err
		}
		// 编号从计数器分配后，再流转到目标状态
		if si.Status != "" && si.Status != string(model.IssueStatusBacklog) {
			if _, err := issueCtrl.Transition(ctx, issue.ID, si.Status); err != nil {
				return 0, err
			}
		}
		created++
	}
	return created, nil
}

// ensureCronJobConfigs 写入默认的维护任务配置，已存在的不覆盖
func ensureCronJobConfigs(ctx context.Context) error {
	db := query.GetDB()
	defaults := []model.CronJobConfig{
		{
			Name:    cleaner.REMIND_STALE_ISSUE_JOB,
			Type:    model.CronJobTypeCleanerFunc,
			Spec:    "0 9 * * *",
			Suspend: ptr.To(false),
			Config:  datatypes.JSON(`{"staleDays": 7}`),
		},
		{
			Name:    cleaner.RETRY_PENDING_ALERT_JOB,
			Type:    model.CronJobTypeCleanerFunc,
			Spec:    "*/10 * * * *",
			Suspend: ptr.To(false),
			Config:  datatypes.JSON(`{"olderThanMinutes": 30}`),
		},
		{
			Name:    cleaner.CLEAN_CRON_RECORD_JOB,
			Type:    model.CronJobTypeCleanerFunc,
			Spec:    "0 3 * * 0",
			Suspend: ptr.To(false),
			Config:  datatypes.JSON(`{"keepDays": 30}`),
		},
	}
	for i := range defaults {
		conf := &defaults[i]
		var count int64
		if err := db.WithContext(ctx).Model(&model.CronJobConfig{}).Where("name = ?", conf.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(conf).Error; err != nil {
			return err
		}
	}
	return nil
}
