package analytics

import "context"

type AnalyticsService interface {
	ShiftDistribution(ctx context.Context, req DistributionRequest) (DistributionResponse, error)
	MedianAcrossStaff(ctx context.Context, req MedianRequest) (MedianResponse, error)
	WeekdayWeekendSplit(ctx context.Context, req SplitRequest) (SplitResponse, error)
	AdminPercentage(ctx context.Context, req AdminPercentageRequest) (AdminPercentageResponse, error)
}
