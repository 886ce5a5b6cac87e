package dto

import (
	"time"

	appreview "github.com/xiebiao/booklibrary/internal/application/review"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// ReviewRequest HTTP书评写请求
type ReviewRequest struct {
	Rating        int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment       string `json:"comment" binding:"max=1000" example:"A classic."`
	ReviewDate    string `json:"review_date" binding:"omitempty" example:"2023-01-15"`
	ReviewerName  string `json:"reviewer_name" binding:"max=100" example:"Alice Zhang"`
	ReviewerEmail string `json:"reviewer_email" binding:"omitempty,email,max=100" example:"alice@example.com"`
	BookID        uint   `json:"book_id" binding:"required" example:"1"`
}

// ToRequest 转换为应用层请求
// 评论日期缺省时由应用层取当前时间
func (r *ReviewRequest) ToRequest() (appreview.ReviewRequest, error) {
	req := appreview.ReviewRequest{
		Rating:        r.Rating,
		Comment:       r.Comment,
		ReviewerName:  r.ReviewerName,
		ReviewerEmail: r.ReviewerEmail,
		BookID:        r.BookID,
	}
	if r.ReviewDate != "" {
		d, err := time.Parse("2006-01-02", r.ReviewDate)
		if err != nil {
			return req, apperrors.New(apperrors.ErrCodeBindError, "评论日期格式错误,应为YYYY-MM-DD")
		}
		req.ReviewDate = d
	}
	return req, nil
}
