package models

// MonthlyStats is the rollup behind the monthly report screen. Percent-change
// fields are nil when the prior month has no value to compare against, so the
// UI renders "N/A" instead of a division-by-zero artifact.
type MonthlyStats struct {
	Month             int      `json:"month"`
	Year              int      `json:"year"`
	TotalBookings     int      `json:"totalBookings"`
	ActiveBookings    int      `json:"activeBookings"`
	CompletedBookings int      `json:"completedBookings"`
	CancelledBookings int      `json:"cancelledBookings"`
	TotalRevenue      float64  `json:"totalRevenue"`
	TotalExpenses     float64  `json:"totalExpenses"`
	NetProfit         float64  `json:"netProfit"`
	RevenueChangePct  *float64 `json:"revenueChangePct"`
	ExpensesChangePct *float64 `json:"expensesChangePct"`
	ProfitChangePct   *float64 `json:"profitChangePct"`
}

// CarReport is the per-car financial and utilization rollup.
type CarReport struct {
	CarID                  int64   `json:"carId"`
	TotalBookings          int     `json:"totalBookings"`
	TotalRevenue           float64 `json:"totalRevenue"`
	TotalExpenses          float64 `json:"totalExpenses"`
	NetProfit              float64 `json:"netProfit"`
	UtilizationRate        float64 `json:"utilizationRate"`
	AverageBookingDuration float64 `json:"averageBookingDuration"`
}

// StakeholderReport rolls up all cars owned by a stakeholder. Profit is
// revenue minus expenses minus the stakeholder's commission cut.
type StakeholderReport struct {
	StakeholderID        int64       `json:"stakeholderId"`
	Name                 string      `json:"name"`
	CommissionPercentage float64     `json:"commissionPercentage"`
	TotalRevenue         float64     `json:"totalRevenue"`
	TotalExpenses        float64     `json:"totalExpenses"`
	CommissionAmount     float64     `json:"commissionAmount"`
	TotalProfit          float64     `json:"totalProfit"`
	Cars                 []CarReport `json:"cars,omitempty"`
}
