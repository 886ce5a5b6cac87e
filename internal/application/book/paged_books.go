package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// 分页查询用例走共享缓存层(Redis):
// 1. 分页参数组合多,进程内缓存命中率低,放共享层让多实例互相复用
// 2. 视图JSON序列化存储,绝对TTL过期
// 3. 非法分页参数不会进入缓存(校验失败的请求在领域服务处被拒绝,
//    自然不会执行回填),所以缓存前置查询不需要重复校验

// GetBooksPagedUseCase 分页查询全部图书用例
type GetBooksPagedUseCase struct {
	bookService book.Service
	cache       SharedCache
}

// NewGetBooksPagedUseCase 创建分页查询用例
func NewGetBooksPagedUseCase(bookService book.Service, cache SharedCache) *GetBooksPagedUseCase {
	return &GetBooksPagedUseCase{bookService: bookService, cache: cache}
}

// Execute 执行分页查询
// 超出末页的页码返回空列表,total仍是完整过滤集大小
func (uc *GetBooksPagedUseCase) Execute(ctx context.Context, page, pageSize int) (*PagedBooksView, error) {
	key := keyBooksPaged(page, pageSize)
	var cached PagedBooksView
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := uc.bookService.GetPaged(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	view := toPagedView(result)
	uc.cache.Set(ctx, key, view)
	return view, nil
}

// GetBooksByAuthorPagedUseCase 分页按作者查询用例
type GetBooksByAuthorPagedUseCase struct {
	bookService book.Service
	cache       SharedCache
}

// NewGetBooksByAuthorPagedUseCase 创建分页按作者查询用例
func NewGetBooksByAuthorPagedUseCase(bookService book.Service, cache SharedCache) *GetBooksByAuthorPagedUseCase {
	return &GetBooksByAuthorPagedUseCase{bookService: bookService, cache: cache}
}

// Execute 执行分页查询
func (uc *GetBooksByAuthorPagedUseCase) Execute(ctx context.Context, authorID uint, page, pageSize int) (*PagedBooksView, error) {
	key := keyBooksByAuthorPaged(authorID, page, pageSize)
	var cached PagedBooksView
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := uc.bookService.GetByAuthorPaged(ctx, authorID, page, pageSize)
	if err != nil {
		return nil, err
	}

	view := toPagedView(result)
	uc.cache.Set(ctx, key, view)
	return view, nil
}

// GetBooksByCategoryPagedUseCase 分页按分类查询用例
type GetBooksByCategoryPagedUseCase struct {
	bookService book.Service
	cache       SharedCache
}

// NewGetBooksByCategoryPagedUseCase 创建分页按分类查询用例
func NewGetBooksByCategoryPagedUseCase(bookService book.Service, cache SharedCache) *GetBooksByCategoryPagedUseCase {
	return &GetBooksByCategoryPagedUseCase{bookService: bookService, cache: cache}
}

// Execute 执行分页查询
func (uc *GetBooksByCategoryPagedUseCase) Execute(ctx context.Context, categoryID uint, page, pageSize int) (*PagedBooksView, error) {
	key := keyBooksByCategoryPaged(categoryID, page, pageSize)
	var cached PagedBooksView
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := uc.bookService.GetByCategoryPaged(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, err
	}

	view := toPagedView(result)
	uc.cache.Set(ctx, key, view)
	return view, nil
}

// SearchBooksPagedUseCase 分页搜索用例
type SearchBooksPagedUseCase struct {
	bookService book.Service
	cache       SharedCache
}

// NewSearchBooksPagedUseCase 创建分页搜索用例
func NewSearchBooksPagedUseCase(bookService book.Service, cache SharedCache) *SearchBooksPagedUseCase {
	return &SearchBooksPagedUseCase{bookService: bookService, cache: cache}
}

// Execute 执行分页搜索
func (uc *SearchBooksPagedUseCase) Execute(ctx context.Context, term string, page, pageSize int) (*PagedBooksView, error) {
	key := keyBooksSearchPaged(term, page, pageSize)
	var cached PagedBooksView
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := uc.bookService.SearchPaged(ctx, term, page, pageSize)
	if err != nil {
		return nil, err
	}

	view := toPagedView(result)
	uc.cache.Set(ctx, key, view)
	return view, nil
}
