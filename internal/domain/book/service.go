package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 读操作对存储只读且无副作用,给定存储状态结果确定——这是上层缓存
//    可以自由记忆化的前提
// 2. 写操作先校验后持久化,校验失败的请求不会触达存储层
type Service interface {
	// GetAll 查询全部图书(含关联)
	GetAll(ctx context.Context) ([]*Book, error)

	// GetByID 根据ID查询图书详情
	GetByID(ctx context.Context, id uint) (*Book, error)

	// GetByAuthor 查询某作者的图书
	GetByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// GetByCategory 查询某分类的图书
	GetByCategory(ctx context.Context, categoryID uint) ([]*Book, error)

	// GetByYear 查询某出版年份的图书
	GetByYear(ctx context.Context, year int) ([]*Book, error)

	// Search 子串搜索
	Search(ctx context.Context, term string) ([]*Book, error)

	// AverageRatings 各图书评分均值(仅含有书评的图书)
	AverageRatings(ctx context.Context) (map[uint]float64, error)

	// GetPaged 分页查询全部图书
	GetPaged(ctx context.Context, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// GetByAuthorPaged 分页查询某作者的图书
	GetByAuthorPaged(ctx context.Context, authorID uint, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// GetByCategoryPaged 分页查询某分类的图书
	GetByCategoryPaged(ctx context.Context, categoryID uint, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// SearchPaged 分页搜索
	SearchPaged(ctx context.Context, term string, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// Create 创建图书,返回带自增ID的完整记录
	Create(ctx context.Context, b *Book) (*Book, error)

	// Update 全量替换可变字段
	// 业务规则:b.ID非零且与targetID不一致时直接拒绝,不访问存储
	Update(ctx context.Context, targetID uint, b *Book) (*Book, error)

	// Delete 删除图书,返回是否存在过该记录
	Delete(ctx context.Context, id uint) (bool, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	return s.repo.FindByAuthor(ctx, authorID)
}

func (s *service) GetByCategory(ctx context.Context, categoryID uint) ([]*Book, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

func (s *service) GetByYear(ctx context.Context, year int) ([]*Book, error) {
	return s.repo.FindByYear(ctx, year)
}

func (s *service) Search(ctx context.Context, term string) ([]*Book, error) {
	return s.repo.Search(ctx, term)
}

func (s *service) AverageRatings(ctx context.Context) (map[uint]float64, error) {
	return s.repo.AverageRatings(ctx)
}

func (s *service) GetPaged(ctx context.Context, pageNumber, pageSize int) (*PagedResult[*Book], error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return s.repo.FindAllPaged(ctx, pageNumber, pageSize)
}

func (s *service) GetByAuthorPaged(ctx context.Context, authorID uint, pageNumber, pageSize int) (*PagedResult[*Book], error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return s.repo.FindByAuthorPaged(ctx, authorID, pageNumber, pageSize)
}

func (s *service) GetByCategoryPaged(ctx context.Context, categoryID uint, pageNumber, pageSize int) (*PagedResult[*Book], error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return s.repo.FindByCategoryPaged(ctx, categoryID, pageNumber, pageSize)
}

func (s *service) SearchPaged(ctx context.Context, term string, pageNumber, pageSize int) (*PagedResult[*Book], error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return s.repo.SearchPaged(ctx, term, pageNumber, pageSize)
}

func (s *service) Create(ctx context.Context, b *Book) (*Book, error) {
	// 1. 领域校验(必填、超长、价格)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// 2. 持久化
	// 作者引用的存在性由存储层外键约束兜底,不在此处预查
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Update(ctx context.Context, targetID uint, b *Book) (*Book, error) {
	// 1. 身份一致性检查:请求体携带了不同的ID时直接拒绝,不访问存储
	if b.ID != 0 && b.ID != targetID {
		return nil, ErrIDMismatch
	}
	b.ID = targetID

	// 2. 领域校验
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// 3. 全量替换(Update对不存在的ID返回ErrBookNotFound)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// validatePaging 分页参数校验:页码和页大小都必须>=1
func validatePaging(pageNumber, pageSize int) error {
	if pageNumber < 1 || pageSize < 1 {
		return ErrInvalidPaging
	}
	return nil
}
