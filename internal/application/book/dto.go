package book

import (
	"fmt"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// BookView 图书视图DTO
// 设计说明:
// 1. 价格同时给出分(price)和展示金额(price_display),避免前端做换算
// 2. 日期统一格式化为字符串,与存储层的time.Time解耦
// 3. 该结构会被JSON序列化进共享缓存,字段增减需考虑旧缓存兼容
//    (解码失败按未命中处理,所以不兼容也只是缓存失效一轮)
type BookView struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	PublishedDate string         `json:"published_date"`
	ISBN          string         `json:"isbn"`
	Price         int64          `json:"price"` // 价格(分)
	PriceDisplay  string         `json:"price_display"`
	PageCount     int            `json:"page_count"`
	Publisher     string         `json:"publisher"`
	Language      string         `json:"language"`
	CoverImageURL string         `json:"cover_image_url"`
	IsAvailable   bool           `json:"is_available"`
	AuthorID      uint           `json:"author_id"`
	Author        *AuthorView    `json:"author,omitempty"`
	Categories    []CategoryView `json:"categories"`
	Reviews       []ReviewView   `json:"reviews"`
	CreatedAt     string         `json:"created_at"`
}

// AuthorView 作者视图DTO
type AuthorView struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Nationality string `json:"nationality"`
}

// CategoryView 分类视图DTO
type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ReviewView 书评视图DTO
type ReviewView struct {
	ID           uint   `json:"id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewDate   string `json:"review_date"`
	ReviewerName string `json:"reviewer_name"`
}

// PagedBooksView 分页视图DTO
type PagedBooksView struct {
	List       []BookView `json:"list"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

const dateLayout = "2006-01-02"
const timeLayout = "2006-01-02 15:04:05"

// formatPrice 分 → 展示金额("1999" → "19.99")
func formatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// toBookView 领域实体 → 视图DTO
func toBookView(b *book.Book) BookView {
	view := BookView{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		PublishedDate: b.PublishedDate.Format(dateLayout),
		ISBN:          b.ISBN,
		Price:         b.Price,
		PriceDisplay:  formatPrice(b.Price),
		PageCount:     b.PageCount,
		Publisher:     b.Publisher,
		Language:      b.Language,
		CoverImageURL: b.CoverImageURL,
		IsAvailable:   b.IsAvailable,
		AuthorID:      b.AuthorID,
		Categories:    make([]CategoryView, len(b.Categories)),
		Reviews:       make([]ReviewView, len(b.Reviews)),
		CreatedAt:     b.CreatedAt.Format(timeLayout),
	}

	if b.Author != nil {
		view.Author = &AuthorView{
			ID:          b.Author.ID,
			FirstName:   b.Author.FirstName,
			LastName:    b.Author.LastName,
			Nationality: b.Author.Nationality,
		}
	}
	for i, c := range b.Categories {
		view.Categories[i] = CategoryView{ID: c.ID, Name: c.Name}
	}
	for i, rv := range b.Reviews {
		view.Reviews[i] = ReviewView{
			ID:           rv.ID,
			Rating:       rv.Rating,
			Comment:      rv.Comment,
			ReviewDate:   rv.ReviewDate.Format(dateLayout),
			ReviewerName: rv.ReviewerName,
		}
	}
	return view
}

// toBookViews 批量转换
func toBookViews(books []*book.Book) []BookView {
	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = toBookView(b)
	}
	return views
}

// toPagedView 分页结果 → 分页视图
func toPagedView(result *book.PagedResult[*book.Book]) *PagedBooksView {
	return &PagedBooksView{
		List:       toBookViews(result.Items),
		Total:      result.TotalCount,
		Page:       result.PageNumber,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages(),
	}
}
