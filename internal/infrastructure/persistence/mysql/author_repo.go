package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/author"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := r.getDB(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}
	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var exists AuthorModel
		if err := tx.Select("id").First(&exists, a.ID).Error; err != nil {
			return err
		}
		return tx.Omit("CreatedAt").Save(model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "更新作者失败")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.getDB(ctx).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		// 仍被图书引用时,外键约束拒绝删除
		if isForeignKeyError(result.Error) {
			return false, apperrors.New(apperrors.ErrCodeStoreError, "作者仍被图书引用,无法删除")
		}
		return false, apperrors.Wrap(result.Error, "删除作者失败")
	}
	return result.RowsAffected > 0, nil
}

func (r *authorRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:          model.ID,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Biography:   model.Biography,
		DateOfBirth: model.DateOfBirth,
		Nationality: model.Nationality,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toAuthorModel 领域实体 → GORM模型
func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Biography:   a.Biography,
		DateOfBirth: a.DateOfBirth,
		Nationality: a.Nationality,
	}
}
