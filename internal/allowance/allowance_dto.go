package allowance

type CreateAllowanceRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	Month          int    `json:"month" binding:"required,min=1,max=12"`
	Year           int    `json:"year" binding:"required,min=2000"`
	MobileRecharge int64  `json:"mobile_recharge" binding:"gte=0"`
	Petrol         int64  `json:"petrol" binding:"gte=0"`
	VehicleTag     int64  `json:"vehicle_tag" binding:"gte=0"`
	Incentive      int64  `json:"incentive" binding:"gte=0"`
	Gift           int64  `json:"gift" binding:"gte=0"`
}

type UpdateAllowanceRequest struct {
	MobileRecharge int64 `json:"mobile_recharge" binding:"gte=0"`
	Petrol         int64 `json:"petrol" binding:"gte=0"`
	VehicleTag     int64 `json:"vehicle_tag" binding:"gte=0"`
	Incentive      int64 `json:"incentive" binding:"gte=0"`
	Gift           int64 `json:"gift" binding:"gte=0"`
}

type AllowanceResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	EmployeeName   string `json:"employee_name,omitempty"`
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	MobileRecharge int64  `json:"mobile_recharge"`
	Petrol         int64  `json:"petrol"`
	VehicleTag     int64  `json:"vehicle_tag"`
	Incentive      int64  `json:"incentive"`
	Gift           int64  `json:"gift"`
	Total          int64  `json:"total"`
}

// AllowanceSummaryResponse carries zeroes when nothing matched the filter.
type AllowanceSummaryResponse struct {
	Count          int64 `json:"count"`
	MobileRecharge int64 `json:"mobile_recharge"`
	Petrol         int64 `json:"petrol"`
	VehicleTag     int64 `json:"vehicle_tag"`
	Incentive      int64 `json:"incentive"`
	Gift           int64 `json:"gift"`
	Total          int64 `json:"total"`
}
