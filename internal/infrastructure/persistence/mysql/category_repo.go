package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/category"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrNameExists
		}
		return apperrors.Wrap(err, "创建分类失败")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	if err := r.getDB(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}
	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var exists CategoryModel
		if err := tx.Select("id").First(&exists, c.ID).Error; err != nil {
			return err
		}
		return tx.Omit("CreatedAt").Save(model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category.ErrCategoryNotFound
		}
		if isDuplicateError(err) {
			return category.ErrNameExists
		}
		return apperrors.Wrap(err, "更新分类失败")
	}
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	existed := false
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// 先清理关联表,再删除分类本身
		if err := tx.Exec("DELETE FROM book_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&CategoryModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		existed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperrors.Wrap(err, "删除分类失败")
	}
	return existed, nil
}

func (r *categoryRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toCategoryModel 领域实体 → GORM模型
func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
