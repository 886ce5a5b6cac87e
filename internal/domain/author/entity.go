package author

import "time"

// Author 作者实体
// 一个作者拥有零或多本图书(一对多);图书侧通过AuthorID引用
type Author struct {
	ID          uint       `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Biography   string     `json:"biography"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Nationality string     `json:"nationality"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate 验证作者实体
func (a *Author) Validate() error {
	if a.FirstName == "" || a.LastName == "" {
		return ErrNameRequired
	}
	if len(a.FirstName) > 100 || len(a.LastName) > 100 {
		return ErrNameTooLong
	}
	if len(a.Biography) > 500 {
		return ErrBiographyTooLong
	}
	return nil
}
