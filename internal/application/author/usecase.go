package author

import (
	"context"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/author"
)

// UseCase 作者CRUD用例
// 作者不在热点查询面上,不走缓存层,直接操作仓储
type UseCase struct {
	repo author.Repository
}

// NewUseCase 创建作者用例
func NewUseCase(repo author.Repository) *UseCase {
	return &UseCase{repo: repo}
}

// AuthorRequest 作者写请求DTO(创建与更新共用,全量替换语义)
type AuthorRequest struct {
	FirstName   string
	LastName    string
	Biography   string
	DateOfBirth *time.Time
	Nationality string
}

// AuthorView 作者视图DTO
type AuthorView struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Biography   string `json:"biography"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Nationality string `json:"nationality"`
	CreatedAt   string `json:"created_at"`
}

func toView(a *author.Author) AuthorView {
	view := AuthorView{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.DateOfBirth != nil {
		view.DateOfBirth = a.DateOfBirth.Format("2006-01-02")
	}
	return view
}

func toEntity(req AuthorRequest) *author.Author {
	return &author.Author{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Biography:   req.Biography,
		DateOfBirth: req.DateOfBirth,
		Nationality: req.Nationality,
	}
}

// List 查询全部作者
func (uc *UseCase) List(ctx context.Context) ([]AuthorView, error) {
	authors, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]AuthorView, len(authors))
	for i, a := range authors {
		views[i] = toView(a)
	}
	return views, nil
}

// Get 查询作者详情,不存在时返回ErrAuthorNotFound
func (uc *UseCase) Get(ctx context.Context, id uint) (*AuthorView, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

// Create 创建作者(先校验后持久化)
func (uc *UseCase) Create(ctx context.Context, req AuthorRequest) (*AuthorView, error) {
	a := toEntity(req)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

// Update 全量替换作者信息
func (uc *UseCase) Update(ctx context.Context, id uint, req AuthorRequest) (*AuthorView, error) {
	a := toEntity(req)
	a.ID = id
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

// Delete 删除作者,返回记录是否存在过
// 仍被图书引用的作者会被存储层外键拒绝
func (uc *UseCase) Delete(ctx context.Context, id uint) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
