package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// RegisterProjectRequest represents the project registration request body.
type RegisterProjectRequest struct {
	Name        string  `json:"name" binding:"required" example:"โครงการปรับปรุงถนนสายหลัก"`
	Ministry    string  `json:"ministry" example:"กระทรวงมหาดไทย"`
	Agency      string  `json:"agency" example:"สำนักงานจังหวัดเชียงราย"`
	Province    string  `json:"province" example:"เชียงราย"`
	Budget      float64 `json:"budget" example:"1250000.50"`
	FiscalYear  int     `json:"fiscal_year" example:"2568"`
	Coordinator string  `json:"coordinator" example:"สมชาย ใจดี"`
}

// CreateRevisionRequest represents the create revision request body.
type CreateRevisionRequest struct {
	EditedFields map[string]interface{} `json:"edited_fields" binding:"required"`
	EditReason   string                 `json:"edit_reason" binding:"required" example:"แก้ไขชื่อหน่วยงาน"`
}
