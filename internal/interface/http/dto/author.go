package dto

import (
	"time"

	appauthor "github.com/xiebiao/booklibrary/internal/application/author"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// AuthorRequest HTTP作者写请求
type AuthorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100" example:"George"`
	LastName    string `json:"last_name" binding:"required,max=100" example:"Orwell"`
	Biography   string `json:"biography" binding:"max=500" example:"English novelist and essayist"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty" example:"1903-06-25"`
	Nationality string `json:"nationality" binding:"max=100" example:"British"`
}

// ToRequest 转换为应用层请求
func (r *AuthorRequest) ToRequest() (appauthor.AuthorRequest, error) {
	req := appauthor.AuthorRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Biography:   r.Biography,
		Nationality: r.Nationality,
	}
	if r.DateOfBirth != "" {
		d, err := time.Parse("2006-01-02", r.DateOfBirth)
		if err != nil {
			return req, apperrors.New(apperrors.ErrCodeBindError, "出生日期格式错误,应为YYYY-MM-DD")
		}
		req.DateOfBirth = &d
	}
	return req, nil
}
