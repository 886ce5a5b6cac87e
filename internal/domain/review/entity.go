package review

import "time"

// Review 书评实体
// 归属于单本图书(BookID必填);评分是1-5的整数
type Review struct {
	ID            uint      `json:"id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewDate    time.Time `json:"review_date"`
	ReviewerName  string    `json:"reviewer_name"`
	ReviewerEmail string    `json:"reviewer_email"`
	BookID        uint      `json:"book_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate 验证书评实体
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	if len(r.Comment) > 1000 {
		return ErrCommentTooLong
	}
	if len(r.ReviewerName) > 100 || len(r.ReviewerEmail) > 100 {
		return ErrReviewerTooLong
	}
	if r.BookID == 0 {
		return ErrBookRequired
	}
	return nil
}
