package analytics

import (
	"context"
	"sort"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/analytics"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
)

type analyticsServiceImpl struct {
	store *session.Store
}

func NewAnalyticsService(store *session.Store) analytics.AnalyticsService {
	return &analyticsServiceImpl{
		store: store,
	}
}

// filtered loads the current snapshot and applies the common filter
// block. The snapshot itself is never mutated.
func (s *analyticsServiceImpl) filtered(filter *analytics.QueryFilter) (*session.Snapshot, roster.RecordSet, error) {
	snap, ok := s.store.Current()
	if !ok {
		return nil, nil, roster.ErrNoRosterLoaded
	}

	records := snap.Records
	records = FilterByDateRange(records, filter.Start, filter.End)
	records = FilterByNames(records, filter.Names)
	records = FilterByShifts(records, filter.Shifts)
	if filter.ExcludeJuniors {
		kept := make(roster.RecordSet, 0, len(records))
		for _, r := range records {
			if !roster.IsJunior(r.Name) {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	return snap, records, nil
}

func (s *analyticsServiceImpl) ShiftDistribution(ctx context.Context, req analytics.DistributionRequest) (analytics.DistributionResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.DistributionResponse{}, err
	}

	_, records, err := s.filtered(&req.QueryFilter)
	if err != nil {
		return analytics.DistributionResponse{}, err
	}

	return analytics.DistributionResponse{
		Mode:         req.Mode,
		TotalRecords: len(records),
		Distribution: ShiftDistribution(records, req.Mode),
	}, nil
}

func (s *analyticsServiceImpl) MedianAcrossStaff(ctx context.Context, req analytics.MedianRequest) (analytics.MedianResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.MedianResponse{}, err
	}

	snap, records, err := s.filtered(&req.QueryFilter)
	if err != nil {
		return analytics.MedianResponse{}, err
	}

	staff := s.population(snap, &req.QueryFilter)

	shiftSet := req.Shifts
	if shiftSet == nil {
		shiftSet = records.Shifts()
	}

	return analytics.MedianResponse{
		StaffCount: len(staff),
		Medians:    MedianAcrossStaff(records, staff, shiftSet),
	}, nil
}

func (s *analyticsServiceImpl) WeekdayWeekendSplit(ctx context.Context, req analytics.SplitRequest) (analytics.SplitResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.SplitResponse{}, err
	}

	_, records, err := s.filtered(&req.QueryFilter)
	if err != nil {
		return analytics.SplitResponse{}, err
	}

	weekday, weekend := WeekdayWeekendSplit(records, req.Mode)
	return analytics.SplitResponse{
		Mode:    req.Mode,
		Weekday: weekday,
		Weekend: weekend,
	}, nil
}

func (s *analyticsServiceImpl) AdminPercentage(ctx context.Context, req analytics.AdminPercentageRequest) (analytics.AdminPercentageResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.AdminPercentageResponse{}, err
	}

	_, records, err := s.filtered(&req.QueryFilter)
	if err != nil {
		return analytics.AdminPercentageResponse{}, err
	}

	percentages := AdminPercentage(records, s.store.Config())

	staff := make([]analytics.StaffPercentage, 0, len(percentages))
	for name, pct := range percentages {
		staff = append(staff, analytics.StaffPercentage{Name: name, Percentage: pct})
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })

	return analytics.AdminPercentageResponse{Staff: staff}, nil
}

// population resolves the staff list a median is taken over: the
// requested name subset when given, otherwise every staff row of the
// roster, so staff with zero records still zero-fill the table.
func (s *analyticsServiceImpl) population(snap *session.Snapshot, filter *analytics.QueryFilter) []string {
	var staff []string
	if filter.Names != nil {
		staff = filter.Names
	} else {
		staff = snap.Staff
	}
	if !filter.ExcludeJuniors {
		return staff
	}
	kept := make([]string, 0, len(staff))
	for _, name := range staff {
		if !roster.IsJunior(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
