package types

// UserSummary là DTO rút gọn cho thông tin user gắn kèm booking / audit
type UserSummary struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       int    `json:"role"`
}
