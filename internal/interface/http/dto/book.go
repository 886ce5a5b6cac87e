package dto

import (
	"time"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// BookRequest HTTP图书写请求(创建与更新共用,全量替换语义)
// 日期格式统一为"2006-01-02"
type BookRequest struct {
	ID            uint   `json:"id" example:"1"` // 更新时可携带,必须与路径ID一致
	Title         string `json:"title" binding:"required,max=200" example:"1984"`
	Description   string `json:"description" binding:"max=1000" example:"A dystopian novel"`
	PublishedDate string `json:"published_date" binding:"required" example:"1949-06-08"`
	ISBN          string `json:"isbn" binding:"max=50" example:"978-0451524935"`
	Price         int64  `json:"price" binding:"min=0" example:"1499"` // 价格(分)
	PageCount     int    `json:"page_count" binding:"min=0" example:"328"`
	Publisher     string `json:"publisher" binding:"max=100" example:"Secker & Warburg"`
	Language      string `json:"language" binding:"max=50" example:"English"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	IsAvailable   bool   `json:"is_available" example:"true"`
	AuthorID      uint   `json:"author_id" binding:"required" example:"2"`
	CategoryIDs   []uint `json:"category_ids" example:"1"`
}

// ParseDate 解析出版日期
func (r *BookRequest) ParseDate() (time.Time, error) {
	d, err := time.Parse("2006-01-02", r.PublishedDate)
	if err != nil {
		return time.Time{}, apperrors.New(apperrors.ErrCodeBindError, "出版日期格式错误,应为YYYY-MM-DD")
	}
	return d, nil
}

// ToCreateRequest 转换为应用层创建请求
func (r *BookRequest) ToCreateRequest(date time.Time) appbook.CreateBookRequest {
	return appbook.CreateBookRequest{
		Title:         r.Title,
		Description:   r.Description,
		PublishedDate: date,
		ISBN:          r.ISBN,
		Price:         r.Price,
		PageCount:     r.PageCount,
		Publisher:     r.Publisher,
		Language:      r.Language,
		CoverImageURL: r.CoverImageURL,
		IsAvailable:   r.IsAvailable,
		AuthorID:      r.AuthorID,
		CategoryIDs:   r.CategoryIDs,
	}
}

// ToUpdateRequest 转换为应用层更新请求
func (r *BookRequest) ToUpdateRequest(date time.Time) appbook.UpdateBookRequest {
	return appbook.UpdateBookRequest{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		PublishedDate: date,
		ISBN:          r.ISBN,
		Price:         r.Price,
		PageCount:     r.PageCount,
		Publisher:     r.Publisher,
		Language:      r.Language,
		CoverImageURL: r.CoverImageURL,
		IsAvailable:   r.IsAvailable,
		AuthorID:      r.AuthorID,
		CategoryIDs:   r.CategoryIDs,
	}
}

// PagingRequest HTTP分页参数
// 缺省时取默认值;显式传入的非法值(page=0等)交给领域层拒绝,
// 不在HTTP层静默修正
type PagingRequest struct {
	Page     int `form:"page" example:"1"`
	PageSize int `form:"page_size" example:"10"`
}

// Normalize 填充缺省值(仅在字段完全未传时)
func (r *PagingRequest) Normalize() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = 10
	}
}

// SearchRequest HTTP搜索参数
type SearchRequest struct {
	Term string `form:"term" example:"Harry"`
}
