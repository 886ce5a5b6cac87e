package mysql

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
	"github.com/xiebiao/booklibrary/internal/domain/review"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// Seeder 种子数据写入器
// 设计说明:
// 1. 仅在books表为空时写入,保证可重复启动
// 2. 全部写入在TxManager的单个事务中完成,部分失败时整体回滚
// 3. 经由各Repository写入(而非直接操作GORM模型),与业务路径一致
type Seeder struct {
	db         *gorm.DB
	txManager  *TxManager
	authors    author.Repository
	categories category.Repository
	books      book.Repository
	reviews    review.Repository
	logger     *zap.Logger
}

// NewSeeder 创建种子数据写入器
func NewSeeder(db *gorm.DB, txManager *TxManager,
	authors author.Repository, categories category.Repository,
	books book.Repository, reviews review.Repository, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:         db,
		txManager:  txManager,
		authors:    authors,
		categories: categories,
		books:      books,
		reviews:    reviews,
		logger:     logger,
	}
}

// Seed 写入初始数据(books表非空时跳过)
func (s *Seeder) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&BookModel{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "检查种子数据失败")
	}
	if count > 0 {
		s.logger.Info("图书表已有数据,跳过种子数据写入", zap.Int64("count", count))
		return nil
	}

	err := s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		rowlingBirth := date(1965, 7, 31)
		rowling := &author.Author{
			FirstName:   "J.K.",
			LastName:    "Rowling",
			Biography:   "British author, best known for the Harry Potter series.",
			DateOfBirth: &rowlingBirth,
			Nationality: "British",
		}
		orwellBirth := date(1903, 6, 25)
		orwell := &author.Author{
			FirstName:   "George",
			LastName:    "Orwell",
			Biography:   "English novelist and essayist, journalist and critic.",
			DateOfBirth: &orwellBirth,
			Nationality: "British",
		}
		for _, a := range []*author.Author{rowling, orwell} {
			if err := s.authors.Create(txCtx, a); err != nil {
				return err
			}
		}

		fantasy := &category.Category{Name: "Fantasy", Description: "Fantasy literature"}
		dystopian := &category.Category{Name: "Dystopian", Description: "Dystopian fiction"}
		for _, c := range []*category.Category{fantasy, dystopian} {
			if err := s.categories.Create(txCtx, c); err != nil {
				return err
			}
		}

		harryPotter := &book.Book{
			Title:         "Harry Potter and the Philosopher's Stone",
			Description:   "The first book in the Harry Potter series.",
			PublishedDate: date(1997, 6, 26),
			ISBN:          "978-0747532699",
			Price:         1999, // 19.99
			PageCount:     223,
			Publisher:     "Bloomsbury",
			Language:      "English",
			IsAvailable:   true,
			AuthorID:      rowling.ID,
			CategoryIDs:   []uint{fantasy.ID},
		}
		nineteen84 := &book.Book{
			Title:         "1984",
			Description:   "A dystopian social science fiction novel.",
			PublishedDate: date(1949, 6, 8),
			ISBN:          "978-0451524935",
			Price:         1499, // 14.99
			PageCount:     328,
			Publisher:     "Secker & Warburg",
			Language:      "English",
			IsAvailable:   true,
			AuthorID:      orwell.ID,
			CategoryIDs:   []uint{dystopian.ID},
		}
		for _, b := range []*book.Book{harryPotter, nineteen84} {
			if err := s.books.Create(txCtx, b); err != nil {
				return err
			}
		}

		seedReviews := []*review.Review{
			{
				Rating:        5,
				Comment:       "A magical start to an unforgettable series.",
				ReviewDate:    date(2023, 1, 15),
				ReviewerName:  "Alice Zhang",
				ReviewerEmail: "alice@example.com",
				BookID:        harryPotter.ID,
			},
			{
				Rating:        4,
				Comment:       "Chilling and thought-provoking.",
				ReviewDate:    date(2023, 2, 20),
				ReviewerName:  "Bob Lee",
				ReviewerEmail: "bob@example.com",
				BookID:        nineteen84.ID,
			},
		}
		for _, rv := range seedReviews {
			if err := s.reviews.Create(txCtx, rv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "写入种子数据失败")
	}

	s.logger.Info("种子数据写入完成")
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
