// Package report computes the read-only analytics: status histograms,
// completion velocity, aging and workload. Every figure is derived from the
// issue store at request time, there is no precomputed state to drift.
//
// Completion is approximated by updated_at of done issues because no
// transition log exists, reopening an issue removes it from past windows.
package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
)

// ReporterInterface 报表计算
type ReporterInterface interface {
	IssuesAging(ctx context.Context, projectIDs []uint, maxAgeDays int) (*AgingResp, error)
	ProjectBurndown(ctx context.Context, project *model.Project, periods int) (*BurndownResp, error)
	ProjectOverview(ctx context.Context, project *model.Project) (*OverviewResp, error)
	TeamVelocity(ctx context.Context, users []model.User, weeks int) (*TeamVelocityResp, error)
	UserVelocity(ctx context.Context, user *model.User, weeks int) (*VelocityResp, error)
	Workload(ctx context.Context, projectIDs []uint) (*WorkloadResp, error)
}

type Reporter struct {
	db *gorm.DB
}

// NewReporter returns a new *Reporter
func NewReporter(db *gorm.DB) ReporterInterface {
	return &Reporter{db: db}
}

const (
	defaultVelocityWeeks = 4
	maxVelocityWeeks     = 26

	defaultBurndownPeriods = 10
	maxBurndownPeriods     = 60
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeWeeks(weeks int) int {
	if weeks <= 0 {
		return defaultVelocityWeeks
	}
	return clamp(weeks, 1, maxVelocityWeeks)
}

func normalizePeriods(periods int) int {
	if periods <= 0 {
		return defaultBurndownPeriods
	}
	// 少于两个点画不出折线
	return clamp(periods, 2, maxBurndownPeriods)
}

// wrapErr tags infrastructure failures with the failing report so the log
// line names the query that broke.
func wrapErr(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)
	klog.Error(wrapped)
	return wrapped
}

type statusCountRow struct {
	Status string
	Count  int64
}

// statusCounts groups the project's issues by status. Only statuses that
// actually occur show up in the map.
func (r *Reporter) statusCounts(ctx context.Context, projectID uint) (map[string]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Select("status, count(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ageInDays truncates to whole days, a ten hour old issue has age 0.
func ageInDays(now, updatedAt time.Time) int {
	return int(now.Sub(updatedAt).Hours() / 24)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
