package dto

// UpdateStatusRequest is the body of every status selector endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
