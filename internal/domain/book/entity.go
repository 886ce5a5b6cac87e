package book

import (
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/category"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. AuthorID是必填的外键引用;作者是否存在由存储层约束兜底(软校验)
// 3. 读操作返回的Book总是携带Author、Categories、Reviews(仓储层急加载)
// 4. CategoryIDs仅在写操作时有意义,仓储层据此维护book_categories关联表
type Book struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	PublishedDate time.Time         `json:"published_date"`
	ISBN          string            `json:"isbn"`
	Price         int64             `json:"price"` // 价格(单位:分)
	PageCount     int               `json:"page_count"`
	Publisher     string            `json:"publisher"`
	Language      string            `json:"language"`
	CoverImageURL string            `json:"cover_image_url"`
	IsAvailable   bool              `json:"is_available"`
	AuthorID      uint              `json:"author_id"`
	Author        *author.Author    `json:"author,omitempty"`
	Categories    []*category.Category `json:"categories"`
	Reviews       []*review.Review  `json:"reviews"`
	CategoryIDs   []uint            `json:"-"` // 写操作时的分类引用
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Validate 验证图书实体
// 业务规则校验在领域层完成,校验失败的记录不会到达存储层
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if len(b.Title) > 200 {
		return ErrTitleTooLong
	}
	if len(b.Description) > 1000 {
		return ErrDescriptionTooLong
	}
	if len(b.ISBN) > 50 {
		return ErrISBNTooLong
	}
	if len(b.Publisher) > 100 {
		return ErrPublisherTooLong
	}
	if b.Price < 0 {
		return ErrInvalidPrice
	}
	if b.AuthorID == 0 {
		return ErrAuthorRequired
	}
	return nil
}

// PagedResult 分页查询结果
// 瞬态视图:每次请求即时计算,不落库
// TotalCount基于未分页的过滤集计算,超出末页的页码返回空Items但TotalCount不变
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
}

// TotalPages 总页数 = ceil(TotalCount / PageSize)
func (p *PagedResult[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := int(p.TotalCount) / p.PageSize
	if int(p.TotalCount)%p.PageSize != 0 {
		pages++
	}
	return pages
}

// NewPagedResult 创建分页结果
func NewPagedResult[T any](items []T, totalCount int64, pageNumber, pageSize int) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}
