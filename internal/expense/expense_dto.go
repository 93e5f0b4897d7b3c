package expense

type CreateExpenseRequest struct {
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
	OfficeRent int64  `json:"office_rent" binding:"gte=0"`
	LightBill  int64  `json:"light_bill" binding:"gte=0"`
	Other      int64  `json:"other" binding:"gte=0"`
	Notes      string `json:"notes" binding:"max=500"`
}

type UpdateExpenseRequest struct {
	OfficeRent int64  `json:"office_rent" binding:"gte=0"`
	LightBill  int64  `json:"light_bill" binding:"gte=0"`
	Other      int64  `json:"other" binding:"gte=0"`
	Notes      string `json:"notes" binding:"max=500"`
}

type ExpenseResponse struct {
	ID         string `json:"id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	OfficeRent int64  `json:"office_rent"`
	LightBill  int64  `json:"light_bill"`
	Other      int64  `json:"other"`
	Total      int64  `json:"total"`
	Notes      string `json:"notes,omitempty"`
}

// ExpenseSummaryResponse carries zeroes when nothing matched the filter.
type ExpenseSummaryResponse struct {
	Count      int64 `json:"count"`
	OfficeRent int64 `json:"office_rent"`
	LightBill  int64 `json:"light_bill"`
	Other      int64 `json:"other"`
	Total      int64 `json:"total"`
}
