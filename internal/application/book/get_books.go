package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// GetBooksUseCase 全部图书查询用例
// 设计说明:
// 1. 读穿透模式:先查本地缓存,未命中再走领域服务,结果回填缓存
// 2. 缓存只在读路径填充,写路径从不失效缓存,陈旧度由TTL界定
// 3. 缓存未命中和类型不符都静默回源,缓存永远不是错误来源
type GetBooksUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewGetBooksUseCase 创建全部图书查询用例
func NewGetBooksUseCase(bookService book.Service, cache LocalCache) *GetBooksUseCase {
	return &GetBooksUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询
func (uc *GetBooksUseCase) Execute(ctx context.Context) ([]BookView, error) {
	key := keyBooksAll()
	if v, ok := uc.cache.Get(key); ok {
		if views, ok := v.([]BookView); ok {
			return views, nil
		}
	}

	books, err := uc.bookService.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := toBookViews(books)
	uc.cache.Set(key, views)
	return views, nil
}

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, cache LocalCache) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询
// 不存在的ID返回ErrBookNotFound;未命中结果不缓存(负缓存会把
// 新建记录的可见性也推迟一个TTL)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookView, error) {
	key := keyBookDetail(id)
	if v, ok := uc.cache.Get(key); ok {
		if view, ok := v.(*BookView); ok {
			return view, nil
		}
	}

	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := toBookView(b)
	uc.cache.Set(key, &view)
	return &view, nil
}
