package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// BookRatingsUseCase 图书平均评分用例
// 结果只覆盖有书评的图书:零书评的图书不出现在映射中,
// 而不是以0分出现(区分"无评分"与"评分为0")
type BookRatingsUseCase struct {
	bookService book.Service
	cache       LocalCache
}

// NewBookRatingsUseCase 创建平均评分用例
func NewBookRatingsUseCase(bookService book.Service, cache LocalCache) *BookRatingsUseCase {
	return &BookRatingsUseCase{bookService: bookService, cache: cache}
}

// Execute 执行查询,返回 图书ID → 平均评分
func (uc *BookRatingsUseCase) Execute(ctx context.Context) (map[uint]float64, error) {
	key := keyBookRatings()
	if v, ok := uc.cache.Get(key); ok {
		if ratings, ok := v.(map[uint]float64); ok {
			return ratings, nil
		}
	}

	ratings, err := uc.bookService.AverageRatings(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, ratings)
	return ratings, nil
}
