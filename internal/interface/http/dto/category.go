package dto

// CategoryRequest HTTP分类写请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Fantasy"`
	Description string `json:"description" binding:"max=500" example:"Fantasy literature"`
}
