package book

import (
	"context"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
// 全量替换语义:请求体中的全部可变字段覆盖现有记录,
// 缺省字段按零值覆盖,不做按字段合并
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 更新图书请求DTO
// ID来自请求体(可缺省);与路径targetID不一致时会被领域服务拒绝
type UpdateBookRequest struct {
	ID            uint
	Title         string
	Description   string
	PublishedDate time.Time
	ISBN          string
	Price         int64 // 价格(分)
	PageCount     int
	Publisher     string
	Language      string
	CoverImageURL string
	IsAvailable   bool
	AuthorID      uint
	CategoryIDs   []uint
}

// Execute 执行更新
// targetID是路径中的目标ID;不存在的ID返回ErrBookNotFound
func (uc *UpdateBookUseCase) Execute(ctx context.Context, targetID uint, req UpdateBookRequest) (*BookView, error) {
	b := &book.Book{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
		ISBN:          req.ISBN,
		Price:         req.Price,
		PageCount:     req.PageCount,
		Publisher:     req.Publisher,
		Language:      req.Language,
		CoverImageURL: req.CoverImageURL,
		IsAvailable:   req.IsAvailable,
		AuthorID:      req.AuthorID,
		CategoryIDs:   req.CategoryIDs,
	}

	updated, err := uc.bookService.Update(ctx, targetID, b)
	if err != nil {
		return nil, err
	}

	view := toBookView(updated)
	return &view, nil
}
