package category

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/category"
)

// UseCase 分类CRUD用例
type UseCase struct {
	repo category.Repository
}

// NewUseCase 创建分类用例
func NewUseCase(repo category.Repository) *UseCase {
	return &UseCase{repo: repo}
}

// CategoryRequest 分类写请求DTO
type CategoryRequest struct {
	Name        string
	Description string
}

// CategoryView 分类视图DTO
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toView(c *category.Category) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// List 查询全部分类
func (uc *UseCase) List(ctx context.Context) ([]CategoryView, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, len(categories))
	for i, c := range categories {
		views[i] = toView(c)
	}
	return views, nil
}

// Get 查询分类详情,不存在时返回ErrCategoryNotFound
func (uc *UseCase) Get(ctx context.Context, id uint) (*CategoryView, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(c)
	return &view, nil
}

// Create 创建分类(分类名唯一)
func (uc *UseCase) Create(ctx context.Context, req CategoryRequest) (*CategoryView, error) {
	c := &category.Category{Name: req.Name, Description: req.Description}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	view := toView(c)
	return &view, nil
}

// Update 全量替换分类信息
func (uc *UseCase) Update(ctx context.Context, id uint, req CategoryRequest) (*CategoryView, error) {
	c := &category.Category{ID: id, Name: req.Name, Description: req.Description}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	view := toView(c)
	return &view, nil
}

// Delete 删除分类,返回记录是否存在过;图书关联随之清理
func (uc *UseCase) Delete(ctx context.Context, id uint) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
