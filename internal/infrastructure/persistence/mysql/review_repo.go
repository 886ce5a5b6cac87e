package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/review"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// reviewRepository 书评仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := toReviewModel(rv)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isForeignKeyError(err) {
			return apperrors.New(apperrors.ErrCodeStoreError, "图书引用不存在")
		}
		return apperrors.Wrap(err, "创建书评失败")
	}
	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}
	return toReviewEntity(&model), nil
}

func (r *reviewRepository) FindByBook(ctx context.Context, bookID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := r.getDB(ctx).Where("book_id = ?", bookID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书书评失败")
	}
	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := toReviewModel(rv)
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var exists ReviewModel
		if err := tx.Select("id").First(&exists, rv.ID).Error; err != nil {
			return err
		}
		return tx.Omit("CreatedAt").Save(model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review.ErrReviewNotFound
		}
		return apperrors.Wrap(err, "更新书评失败")
	}
	rv.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.getDB(ctx).Delete(&ReviewModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除书评失败")
	}
	return result.RowsAffected > 0, nil
}

func (r *reviewRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:            model.ID,
		Rating:        model.Rating,
		Comment:       model.Comment,
		ReviewDate:    model.ReviewDate,
		ReviewerName:  model.ReviewerName,
		ReviewerEmail: model.ReviewerEmail,
		BookID:        model.BookID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// toReviewModel 领域实体 → GORM模型
func toReviewModel(rv *review.Review) *ReviewModel {
	return &ReviewModel{
		ID:            rv.ID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		ReviewDate:    rv.ReviewDate,
		ReviewerName:  rv.ReviewerName,
		ReviewerEmail: rv.ReviewerEmail,
		BookID:        rv.BookID,
	}
}
