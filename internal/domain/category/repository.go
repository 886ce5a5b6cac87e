package category

import "context"

// Repository 分类仓储接口
type Repository interface {
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	FindAll(ctx context.Context) ([]*Category, error)

	// Update 全量覆盖,不存在时返回ErrCategoryNotFound
	Update(ctx context.Context, c *Category) error

	// Delete 返回是否存在过该记录;book_categories中的关联随之级联删除
	Delete(ctx context.Context, id uint) (bool, error)
}
