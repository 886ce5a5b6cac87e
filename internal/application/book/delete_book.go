package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 执行删除,返回记录是否存在过
// 重复删除同一ID:第一次true,之后false,都不是错误
// 已删除记录可能仍在缓存中存活至TTL结束(写路径不失效缓存)
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (bool, error) {
	return uc.bookService.Delete(ctx, id)
}
