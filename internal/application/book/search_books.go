package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 朴素子串匹配(书名/描述/作者姓名),大小写敏感
type SearchBooksUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service, cache LocalCache) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService, cache: cache}
}

// Execute 执行搜索
// 关键词原样进入缓存键,不同关键词互不串扰;无匹配返回空列表
func (uc *SearchBooksUseCase) Execute(ctx context.Context, term string) ([]BookView, error) {
	key := keyBooksSearch(term)
	if v, ok := uc.cache.Get(key); ok {
		if views, ok := v.([]BookView); ok {
			return views, nil
		}
	}

	books, err := uc.bookService.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	views := toBookViews(books)
	uc.cache.Set(key, views)
	return views, nil
}
