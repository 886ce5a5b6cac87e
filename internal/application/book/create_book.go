package book

import (
	"context"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 写路径完全不触碰缓存:不回填也不失效,新记录的可见性
//    由各缓存层TTL自然收敛
// 2. 校验由领域服务完成,校验失败的请求不会触达存储层
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
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

// Execute 执行创建,返回带自增ID的完整视图
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookView, error) {
	b := &book.Book{
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

	created, err := uc.bookService.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	view := toBookView(created)
	return &view, nil
}
