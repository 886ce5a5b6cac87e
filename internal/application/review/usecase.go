package review

import (
	"context"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// UseCase 书评CRUD用例
type UseCase struct {
	repo review.Repository
}

// NewUseCase 创建书评用例
func NewUseCase(repo review.Repository) *UseCase {
	return &UseCase{repo: repo}
}

// ReviewRequest 书评写请求DTO
type ReviewRequest struct {
	Rating        int
	Comment       string
	ReviewDate    time.Time
	ReviewerName  string
	ReviewerEmail string
	BookID        uint
}

// ReviewView 书评视图DTO
type ReviewView struct {
	ID            uint   `json:"id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	ReviewDate    string `json:"review_date"`
	ReviewerName  string `json:"reviewer_name"`
	ReviewerEmail string `json:"reviewer_email"`
	BookID        uint   `json:"book_id"`
	CreatedAt     string `json:"created_at"`
}

func toView(rv *review.Review) ReviewView {
	return ReviewView{
		ID:            rv.ID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		ReviewDate:    rv.ReviewDate.Format("2006-01-02"),
		ReviewerName:  rv.ReviewerName,
		ReviewerEmail: rv.ReviewerEmail,
		BookID:        rv.BookID,
		CreatedAt:     rv.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toEntity(req ReviewRequest) *review.Review {
	reviewDate := req.ReviewDate
	if reviewDate.IsZero() {
		reviewDate = time.Now()
	}
	return &review.Review{
		Rating:        req.Rating,
		Comment:       req.Comment,
		ReviewDate:    reviewDate,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		BookID:        req.BookID,
	}
}

// ListByBook 查询某本图书的全部书评
func (uc *UseCase) ListByBook(ctx context.Context, bookID uint) ([]ReviewView, error) {
	reviews, err := uc.repo.FindByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	views := make([]ReviewView, len(reviews))
	for i, rv := range reviews {
		views[i] = toView(rv)
	}
	return views, nil
}

// Get 查询书评详情,不存在时返回ErrReviewNotFound
func (uc *UseCase) Get(ctx context.Context, id uint) (*ReviewView, error) {
	rv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(rv)
	return &view, nil
}

// Create 创建书评(评分1-5,图书引用必填)
func (uc *UseCase) Create(ctx context.Context, req ReviewRequest) (*ReviewView, error) {
	rv := toEntity(req)
	if err := rv.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	view := toView(rv)
	return &view, nil
}

// Update 全量替换书评
func (uc *UseCase) Update(ctx context.Context, id uint, req ReviewRequest) (*ReviewView, error) {
	rv := toEntity(req)
	rv.ID = id
	if err := rv.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, rv); err != nil {
		return nil, err
	}
	view := toView(rv)
	return &view, nil
}

// Delete 删除书评,返回记录是否存在过
func (uc *UseCase) Delete(ctx context.Context, id uint) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
