package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
	"github.com/xiebiao/booklibrary/internal/domain/review"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// newFixture 构造带初始数据的领域服务
// 数据集:两位作者、两个分类、两本图书、各一条书评(评分5和4)
func newFixture(t *testing.T) (book.Service, *memory.BookRepository) {
	t.Helper()
	repo := memory.NewBookRepository()
	repo.PutAuthor(&author.Author{ID: 1, FirstName: "J.K.", LastName: "Rowling"})
	repo.PutAuthor(&author.Author{ID: 2, FirstName: "George", LastName: "Orwell"})
	repo.PutCategory(&category.Category{ID: 1, Name: "Fantasy"})
	repo.PutCategory(&category.Category{ID: 2, Name: "Dystopian"})

	svc := book.NewService(repo)
	ctx := context.Background()

	hp := &book.Book{
		Title:         "Harry Potter and the Philosopher's Stone",
		Description:   "The first book in the Harry Potter series.",
		PublishedDate: time.Date(1997, 6, 26, 0, 0, 0, 0, time.UTC),
		Price:         1999,
		AuthorID:      1,
		CategoryIDs:   []uint{1},
	}
	nf := &book.Book{
		Title:         "1984",
		Description:   "A dystopian social science fiction novel.",
		PublishedDate: time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC),
		Price:         1499,
		AuthorID:      2,
		CategoryIDs:   []uint{2},
	}
	for _, b := range []*book.Book{hp, nf} {
		_, err := svc.Create(ctx, b)
		require.NoError(t, err)
	}

	require.NoError(t, repo.AddReview(&review.Review{Rating: 5, BookID: hp.ID}))
	require.NoError(t, repo.AddReview(&review.Review{Rating: 4, BookID: nf.ID}))
	return svc, repo
}

func TestService_GetAll(t *testing.T) {
	svc, _ := newFixture(t)

	books, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	// 读操作返回水合后的实体:作者/分类/书评都已装配
	hp := books[0]
	require.NotNil(t, hp.Author)
	assert.Equal(t, "Rowling", hp.Author.LastName)
	require.Len(t, hp.Categories, 1)
	assert.Equal(t, "Fantasy", hp.Categories[0].Name)
	require.Len(t, hp.Reviews, 1)
	assert.Equal(t, 5, hp.Reviews[0].Rating)
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("存在的ID返回详情", func(t *testing.T) {
		b, err := svc.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "1984", b.Title)
	})

	t.Run("不存在的ID返回not-found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestService_FilterQueries(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("按作者", func(t *testing.T) {
		books, err := svc.GetByAuthor(ctx, 2)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "1984", books[0].Title)
	})

	t.Run("未知作者返回空列表而非错误", func(t *testing.T) {
		books, err := svc.GetByAuthor(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("按分类", func(t *testing.T) {
		books, err := svc.GetByCategory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, uint(1), books[0].ID)
	})

	t.Run("按年份", func(t *testing.T) {
		books, err := svc.GetByYear(ctx, 1949)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "1984", books[0].Title)
	})
}

func TestService_Search(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("书名子串命中", func(t *testing.T) {
		books, err := svc.Search(ctx, "Harry")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Contains(t, books[0].Title, "Harry Potter")
	})

	t.Run("作者姓氏命中", func(t *testing.T) {
		books, err := svc.Search(ctx, "Orwell")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "1984", books[0].Title)
	})

	t.Run("大小写敏感", func(t *testing.T) {
		books, err := svc.Search(ctx, "harry")
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("无匹配返回空列表", func(t *testing.T) {
		books, err := svc.Search(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestService_AverageRatings(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	t.Run("多条书评取均值", func(t *testing.T) {
		// 给1984追加一条评分5:[4,5] → 4.5
		require.NoError(t, repo.AddReview(&review.Review{Rating: 5, BookID: 2}))

		ratings, err := svc.AverageRatings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4.5, ratings[2])
		assert.Equal(t, 5.0, ratings[1])
	})

	t.Run("零书评图书不出现在结果中", func(t *testing.T) {
		created, err := svc.Create(ctx, &book.Book{
			Title: "Animal Farm", Price: 999, AuthorID: 2,
			PublishedDate: time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		ratings, err := svc.AverageRatings(ctx)
		require.NoError(t, err)
		_, present := ratings[created.ID]
		assert.False(t, present, "无书评的图书不应出现在评分结果中")
	})
}

func TestService_Paged(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("先计数后切片", func(t *testing.T) {
		result, err := svc.GetPaged(ctx, 1, 1)
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, int64(2), result.TotalCount)
		assert.Equal(t, 2, result.TotalPages())
	})

	t.Run("超出末页:空条目但总数不变", func(t *testing.T) {
		result, err := svc.GetPaged(ctx, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, int64(2), result.TotalCount)
	})

	t.Run("非法分页参数被拒绝", func(t *testing.T) {
		_, err := svc.GetPaged(ctx, 0, 10)
		assert.ErrorIs(t, err, book.ErrInvalidPaging)
		assert.True(t, apperrors.IsValidation(err))

		_, err = svc.GetPaged(ctx, 1, 0)
		assert.ErrorIs(t, err, book.ErrInvalidPaging)
	})

	t.Run("分页搜索:无匹配时总数为0", func(t *testing.T) {
		result, err := svc.SearchPaged(ctx, "nonexistent", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, int64(0), result.TotalCount)
	})
}

func TestService_Create(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("校验失败不触达存储", func(t *testing.T) {
		_, err := svc.Create(ctx, &book.Book{Title: "", Price: 100, AuthorID: 1})
		assert.ErrorIs(t, err, book.ErrTitleRequired)

		books, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 2, "校验失败的记录不应被持久化")
	})

	t.Run("创建成功返回自增ID", func(t *testing.T) {
		created, err := svc.Create(ctx, &book.Book{
			Title: "Animal Farm", Price: 999, AuthorID: 2,
			PublishedDate: time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})
}

func TestService_Update(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("请求体ID与目标ID不一致时拒绝且不访问存储", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, &book.Book{ID: 2, Title: "Hijack", Price: 1, AuthorID: 1})
		assert.ErrorIs(t, err, book.ErrIDMismatch)

		// 两条记录都未被修改
		b1, _ := svc.GetByID(ctx, 1)
		b2, _ := svc.GetByID(ctx, 2)
		assert.NotEqual(t, "Hijack", b1.Title)
		assert.NotEqual(t, "Hijack", b2.Title)
	})

	t.Run("请求体ID缺省时沿用目标ID", func(t *testing.T) {
		updated, err := svc.Update(ctx, 2, &book.Book{
			Title: "Nineteen Eighty-Four", Price: 1599, AuthorID: 2,
			PublishedDate: time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC),
			CategoryIDs:   []uint{2},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(2), updated.ID)

		b, err := svc.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Nineteen Eighty-Four", b.Title)
		assert.Equal(t, int64(1599), b.Price)
	})

	t.Run("不存在的ID返回not-found", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, &book.Book{Title: "Ghost", Price: 1, AuthorID: 1})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("校验失败不触达存储", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, &book.Book{Title: "", Price: 1, AuthorID: 1})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestService_Delete(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	existed, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, existed)

	// 删除后查询返回not-found
	_, err = svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	// 重复删除:存在性为false,不是错误
	existed, err = svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestService_EndToEnd(t *testing.T) {
	// 创建→查询→书评→评分 的完整链路
	svc, repo := newFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &book.Book{
		Title: "Brave New World", Price: 1299, AuthorID: 2,
		PublishedDate: time.Date(1932, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryIDs:   []uint{2},
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brave New World", fetched.Title)

	require.NoError(t, repo.AddReview(&review.Review{Rating: 4, BookID: created.ID}))
	require.NoError(t, repo.AddReview(&review.Review{Rating: 5, BookID: created.ID}))

	ratings, err := svc.AverageRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.5, ratings[created.ID])
}
