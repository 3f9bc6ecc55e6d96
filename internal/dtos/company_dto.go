package dtos

type CompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`

	// Optional Fields
	Website string `json:"website"`
}
