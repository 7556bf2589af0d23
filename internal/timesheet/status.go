package timesheet

// MonthlyStatus compares the policy target of a month with the hours logged in it
type MonthlyStatus struct {
	Year           int
	Month          int
	DaysInMonth    int
	TargetHours    float64
	LoggedHours    float64
	WorkingFridays []int // default working Fridays, day of month
}

// RemainingHours is positive while hours are missing, negative on overage
func (s MonthlyStatus) RemainingHours() float64 {
	return s.TargetHours - s.LoggedHours
}

// ProgressPercent is logged hours relative to the target
func (s MonthlyStatus) ProgressPercent() float64 {
	if s.TargetHours <= 0 {
		return 0
	}
	return s.LoggedHours / s.TargetHours * 100
}
