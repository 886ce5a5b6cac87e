package author

import "context"

// Repository 作者仓储接口
type Repository interface {
	Create(ctx context.Context, a *Author) error

	// FindByID 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	FindAll(ctx context.Context) ([]*Author, error)

	// Update 全量覆盖,不存在时返回ErrAuthorNotFound
	Update(ctx context.Context, a *Author) error

	// Delete 返回是否存在过该记录
	// 注意:仍有图书引用该作者时,存储层外键会拒绝删除(store error)
	Delete(ctx context.Context, id uint) (bool, error)
}
