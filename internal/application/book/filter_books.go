package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// GetBooksByAuthorUseCase 按作者查询用例
type GetBooksByAuthorUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewGetBooksByAuthorUseCase 创建按作者查询用例
func NewGetBooksByAuthorUseCase(bookService book.Service, cache LocalCache) *GetBooksByAuthorUseCase {
	return &GetBooksByAuthorUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询
// 未知作者不报错,返回空列表(列表查询的空集与not-found语义不同)
func (uc *GetBooksByAuthorUseCase) Execute(ctx context.Context, authorID uint) ([]BookView, error) {
	key := keyBooksByAuthor(authorID)
	if v, ok := uc.cache.Get(key); ok {
		if views, ok := v.([]BookView); ok {
			return views, nil
		}
	}

	books, err := uc.bookService.GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	views := toBookViews(books)
	uc.cache.Set(key, views)
	return views, nil
}

// GetBooksByCategoryUseCase 按分类查询用例
type GetBooksByCategoryUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewGetBooksByCategoryUseCase 创建按分类查询用例
func NewGetBooksByCategoryUseCase(bookService book.Service, cache LocalCache) *GetBooksByCategoryUseCase {
	return &GetBooksByCategoryUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询
func (uc *GetBooksByCategoryUseCase) Execute(ctx context.Context, categoryID uint) ([]BookView, error) {
	key := keyBooksByCategory(categoryID)
	if v, ok := uc.cache.Get(key); ok {
		if views, ok := v.([]BookView); ok {
			return views, nil
		}
	}

	books, err := uc.bookService.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	views := toBookViews(books)
	uc.cache.Set(key, views)
	return views, nil
}

// GetBooksByYearUseCase 按出版年份查询用例
type GetBooksByYearUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewGetBooksByYearUseCase 创建按年份查询用例
func NewGetBooksByYearUseCase(bookService book.Service, cache LocalCache) *GetBooksByYearUseCase {
	return &GetBooksByYearUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询
func (uc *GetBooksByYearUseCase) Execute(ctx context.Context, year int) ([]BookView, error) {
	key := keyBooksByYear(year)
	if v, ok := uc.cache.Get(key); ok {
		if views, ok := v.([]BookView); ok {
			return views, nil
		}
	}

	books, err := uc.bookService.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	views := toBookViews(books)
	uc.cache.Set(key, views)
	return views, nil
}
