package dto

type DashboardStatsDTO struct {
	ActiveJobs        int64 `json:"activeJobs"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	PendingReview     int64 `json:"pendingReview"`
	ThisMonth         int64 `json:"thisMonth"`
}
