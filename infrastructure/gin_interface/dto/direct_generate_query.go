package dto

type DirectGenerateQuery struct {
	City  string `form:"city" binding:"required"`
	State string `form:"state"`
	Email string `form:"email" binding:"required"`
}
