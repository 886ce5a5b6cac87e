package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
	"github.com/xiebiao/booklibrary/internal/domain/review"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 读操作统一做关联急加载(Author/Categories/Reviews),即"水合"步骤
// 4. 分页查询先对未分页的过滤集Count,再做LIMIT/OFFSET切片;
//    两步不在同一快照中执行,并发写入时总数与切片可能反映不同状态(已知属性)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// hydrated 带关联急加载的基础查询
func (r *bookRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Reviews")
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.hydrated(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.hydrated(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := r.hydrated(ctx).Where("author_id = ?", authorID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按作者查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByCategory(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var models []BookModel
	err := r.hydrated(ctx).
		Where("id IN (?)", r.categoryBookIDs(categoryID)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按分类查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByYear(ctx context.Context, year int) ([]*book.Book, error) {
	var models []BookModel
	err := r.hydrated(ctx).Where("YEAR(published_date) = ?", year).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按年份查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) Search(ctx context.Context, term string) ([]*book.Book, error) {
	var models []BookModel
	err := r.searchQuery(ctx, term).
		Preload("Author").
		Preload("Categories").
		Preload("Reviews").
		Select("books.*").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) AverageRatings(ctx context.Context) (map[uint]float64, error) {
	// GROUP BY天然只覆盖有书评的图书,零书评图书不会出现在结果中
	var rows []struct {
		BookID    uint
		AvgRating float64
	}
	err := r.getDB(ctx).
		Table("reviews").
		Select("book_id, AVG(rating) AS avg_rating").
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计图书平均评分失败")
	}

	ratings := make(map[uint]float64, len(rows))
	for _, row := range rows {
		ratings[row.BookID] = row.AvgRating
	}
	return ratings, nil
}

func (r *bookRepository) FindAllPaged(ctx context.Context, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	query := r.getDB(ctx).Model(&BookModel{})
	return r.paged(query, pageNumber, pageSize)
}

func (r *bookRepository) FindByAuthorPaged(ctx context.Context, authorID uint, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	query := r.getDB(ctx).Model(&BookModel{}).Where("author_id = ?", authorID)
	return r.paged(query, pageNumber, pageSize)
}

func (r *bookRepository) FindByCategoryPaged(ctx context.Context, categoryID uint, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	query := r.getDB(ctx).Model(&BookModel{}).
		Where("id IN (?)", r.categoryBookIDs(categoryID))
	return r.paged(query, pageNumber, pageSize)
}

func (r *bookRepository) SearchPaged(ctx context.Context, term string, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	return r.paged(r.searchQuery(ctx, term).Select("books.*"), pageNumber, pageSize)
}

// paged 统一的分页执行:同一过滤谓词先Count后切片
// 超出末页的页码返回空Items,TotalCount仍反映完整过滤集大小
func (r *bookRepository) paged(query *gorm.DB, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书总数失败")
	}

	var models []BookModel
	offset := (pageNumber - 1) * pageSize
	err := query.
		Preload("Author").
		Preload("Categories").
		Preload("Reviews").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "分页查询图书失败")
	}

	return book.NewPagedResult(toBookEntities(models), total, pageNumber, pageSize), nil
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 插入图书主记录(关联单独维护)
		if err := tx.Omit("Author", "Categories", "Reviews").Create(model).Error; err != nil {
			return err
		}

		// 2. 维护分类关联
		if len(b.CategoryIDs) > 0 {
			cats := categoryRefs(b.CategoryIDs)
			if err := tx.Model(model).Association("Categories").Append(&cats); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isForeignKeyError(err) {
			return apperrors.New(apperrors.ErrCodeStoreError, "作者或分类引用不存在")
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID和时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在性检查:区分"不存在"与"空更新"
		var exists BookModel
		if err := tx.Select("id").First(&exists, b.ID).Error; err != nil {
			return err
		}

		// 2. 全量覆盖可变字段(创建时间除外)
		if err := tx.Omit("CreatedAt", "Author", "Categories", "Reviews").Save(model).Error; err != nil {
			return err
		}

		// 3. 分类关联全量替换
		cats := categoryRefs(b.CategoryIDs)
		return tx.Model(model).Association("Categories").Replace(&cats)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrBookNotFound
		}
		if isForeignKeyError(err) {
			return apperrors.New(apperrors.ErrCodeStoreError, "作者或分类引用不存在")
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) (bool, error) {
	existed := false
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// 先清理依赖记录,再删除主记录
		if err := tx.Exec("DELETE FROM book_categories WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		existed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperrors.Wrap(err, "删除图书失败")
	}
	return existed, nil
}

// =========================================
// 辅助函数
// =========================================

// searchQuery 搜索过滤谓词:书名/描述/作者姓名的朴素子串匹配
// LIKE BINARY保证大小写敏感,与简单substring语义一致
func (r *bookRepository) searchQuery(ctx context.Context, term string) *gorm.DB {
	kw := "%" + term + "%"
	return r.getDB(ctx).Model(&BookModel{}).
		Joins("LEFT JOIN authors ON authors.id = books.author_id").
		Where("books.title LIKE BINARY ? OR books.description LIKE BINARY ? OR authors.first_name LIKE BINARY ? OR authors.last_name LIKE BINARY ?",
			kw, kw, kw, kw)
}

// categoryBookIDs 某分类下图书ID的子查询
func (r *bookRepository) categoryBookIDs(categoryID uint) *gorm.DB {
	return r.db.Table("book_categories").
		Select("book_id").
		Where("category_id = ?", categoryID)
}

// categoryRefs 分类ID列表 → 仅含主键的关联引用
func categoryRefs(ids []uint) []CategoryModel {
	cats := make([]CategoryModel, len(ids))
	for i, id := range ids {
		cats[i] = CategoryModel{ID: id}
	}
	return cats
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// =========================================
// 模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		PublishedDate: model.PublishedDate,
		ISBN:          model.ISBN,
		Price:         model.Price,
		PageCount:     model.PageCount,
		Publisher:     model.Publisher,
		Language:      model.Language,
		CoverImageURL: model.CoverImageURL,
		IsAvailable:   model.IsAvailable,
		AuthorID:      model.AuthorID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}

	if model.Author != nil {
		b.Author = toAuthorEntity(model.Author)
	}

	b.Categories = make([]*category.Category, len(model.Categories))
	for i := range model.Categories {
		b.Categories[i] = toCategoryEntity(&model.Categories[i])
	}

	b.Reviews = make([]*review.Review, len(model.Reviews))
	for i := range model.Reviews {
		b.Reviews[i] = toReviewEntity(&model.Reviews[i])
	}

	b.CategoryIDs = make([]uint, len(model.Categories))
	for i := range model.Categories {
		b.CategoryIDs[i] = model.Categories[i].ID
	}

	return b
}

// toBookEntities 批量转换
func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		ISBN:          b.ISBN,
		Price:         b.Price,
		PageCount:     b.PageCount,
		Publisher:     b.Publisher,
		Language:      b.Language,
		CoverImageURL: b.CoverImageURL,
		IsAvailable:   b.IsAvailable,
		AuthorID:      b.AuthorID,
	}
}
