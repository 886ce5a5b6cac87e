package review

import "context"

// Repository 书评仓储接口
type Repository interface {
	Create(ctx context.Context, r *Review) error

	// FindByID 不存在时返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// FindByBook 查询某本图书的全部书评
	FindByBook(ctx context.Context, bookID uint) ([]*Review, error)

	// Update 全量覆盖,不存在时返回ErrReviewNotFound
	Update(ctx context.Context, r *Review) error

	// Delete 返回是否存在过该记录
	Delete(ctx context.Context, id uint) (bool, error)
}
