package followup

type CreateFollowUpRequest struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	DueDate    string  `json:"due_date" binding:"required"`
	DueTime    *string `json:"due_time"`
	Reason     string  `json:"reason" binding:"required"`
	Note       string  `json:"note"`
}

type UpdateFollowUpRequest struct {
	DueDate *string `json:"due_date"`
	DueTime *string `json:"due_time"`
	Reason  *string `json:"reason"`
	Note    *string `json:"note"`
}
