package book_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/infrastructure/cache"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/memory"
)

// fakeSharedCache 进程内的共享缓存替身
// 和真实实现一样走JSON编解码,方便验证序列化往返
type fakeSharedCache struct {
	entries map[string][]byte
}

func newFakeSharedCache() *fakeSharedCache {
	return &fakeSharedCache{entries: make(map[string][]byte)}
}

func (f *fakeSharedCache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, ok := f.entries[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

func (f *fakeSharedCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.entries[key] = data
}

func (f *fakeSharedCache) flush() {
	f.entries = make(map[string][]byte)
}

func newService(t *testing.T) (book.Service, *memory.BookRepository) {
	t.Helper()
	repo := memory.NewBookRepository()
	repo.PutAuthor(&author.Author{ID: 1, FirstName: "George", LastName: "Orwell"})

	svc := book.NewService(repo)
	_, err := svc.Create(context.Background(), &book.Book{
		Title: "1984", Price: 1499, AuthorID: 1,
		PublishedDate: time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return svc, repo
}

func TestGetBooks_BoundedStaleness(t *testing.T) {
	// 写路径不失效缓存:TTL内的两次读取结果一致(即使中间发生写入),
	// TTL过后读取看到写入
	svc, _ := newService(t)
	local := cache.NewLocalCache(80 * time.Millisecond)
	getBooks := appbook.NewGetBooksUseCase(svc, local)
	createBook := appbook.NewCreateBookUseCase(svc)
	ctx := context.Background()

	first, err := getBooks.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// 中间写入一本新书
	_, err = createBook.Execute(ctx, appbook.CreateBookRequest{
		Title: "Animal Farm", Price: 999, AuthorID: 1,
		PublishedDate: time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// TTL内:仍然返回缓存的旧结果
	second, err := getBooks.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "TTL内的读取不应看到写入")

	// TTL过后:缓存过期,看到写入
	time.Sleep(100 * time.Millisecond)
	third, err := getBooks.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestGetBook_ReadThrough(t *testing.T) {
	svc, repo := newService(t)
	local := cache.NewLocalCache(time.Minute)
	getBook := appbook.NewGetBookUseCase(svc, local)
	ctx := context.Background()

	t.Run("未命中时回源并回填", func(t *testing.T) {
		view, err := getBook.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "1984", view.Title)

		// 直接从存储删除后,TTL内仍能命中缓存
		_, err = repo.Delete(ctx, 1)
		require.NoError(t, err)

		cached, err := getBook.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, view, cached)
	})

	t.Run("not-found原样透出且不缓存", func(t *testing.T) {
		_, err := getBook.Execute(ctx, 999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestGetBooksPaged_SharedTier(t *testing.T) {
	svc, _ := newService(t)
	shared := newFakeSharedCache()
	getPaged := appbook.NewGetBooksPagedUseCase(svc, shared)
	createBook := appbook.NewCreateBookUseCase(svc)
	ctx := context.Background()

	first, err := getPaged.Execute(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Total)
	assert.Equal(t, 1, first.TotalPages)

	// 写入后缓存键仍命中旧视图(JSON往返)
	_, err = createBook.Execute(ctx, appbook.CreateBookRequest{
		Title: "Animal Farm", Price: 999, AuthorID: 1,
		PublishedDate: time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	stale, err := getPaged.Execute(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, first, stale)

	// 缓存失效(模拟TTL到期)后看到写入
	shared.flush()
	fresh, err := getPaged.Execute(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.Total)
}

func TestGetBooksPaged_KeysByParameterTuple(t *testing.T) {
	// 不同分页参数使用不同缓存键,互不串扰
	svc, _ := newService(t)
	shared := newFakeSharedCache()
	getPaged := appbook.NewGetBooksPagedUseCase(svc, shared)
	ctx := context.Background()

	p1, err := getPaged.Execute(ctx, 1, 1)
	require.NoError(t, err)
	p2, err := getPaged.Execute(ctx, 2, 1)
	require.NoError(t, err)

	assert.Len(t, shared.entries, 2)
	assert.Len(t, p1.List, 1)
	assert.Empty(t, p2.List)
	assert.Equal(t, int64(1), p2.Total)
}

func TestGetBooksPaged_InvalidParamsNotCached(t *testing.T) {
	svc, _ := newService(t)
	shared := newFakeSharedCache()
	getPaged := appbook.NewGetBooksPagedUseCase(svc, shared)

	_, err := getPaged.Execute(context.Background(), 0, 10)
	assert.ErrorIs(t, err, book.ErrInvalidPaging)
	assert.Empty(t, shared.entries, "被拒绝的请求不应污染缓存")
}

func TestSearchBooks_CachesPerTerm(t *testing.T) {
	svc, _ := newService(t)
	local := cache.NewLocalCache(time.Minute)
	search := appbook.NewSearchBooksUseCase(svc, local)
	ctx := context.Background()

	hit, err := search.Execute(ctx, "1984")
	require.NoError(t, err)
	require.Len(t, hit, 1)

	miss, err := search.Execute(ctx, "Tolstoy")
	require.NoError(t, err)
	assert.Empty(t, miss)

	// 两个关键词各占一个缓存条目
	assert.Equal(t, 2, local.Len())
}

func TestDeleteBook_ReportsExistence(t *testing.T) {
	svc, _ := newService(t)
	deleteBook := appbook.NewDeleteBookUseCase(svc)
	ctx := context.Background()

	existed, err := deleteBook.Execute(ctx, 1)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = deleteBook.Execute(ctx, 1)
	require.NoError(t, err)
	assert.False(t, existed)
}
