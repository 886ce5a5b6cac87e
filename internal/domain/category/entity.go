package category

import "time"

// Category 图书分类实体
// 与图书是多对多关系,经book_categories关联表连接
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate 验证分类实体
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if len(c.Name) > 100 {
		return ErrNameTooLong
	}
	if len(c.Description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}
