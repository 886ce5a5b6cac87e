package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/infrastructure/cache"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/booklibrary/internal/interface/http/handler"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/jwt"
)

// inMemorySharedCache 测试用共享缓存替身(JSON编解码与真实实现一致)
type inMemorySharedCache struct {
	entries map[string][]byte
}

func (f *inMemorySharedCache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, ok := f.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (f *inMemorySharedCache) Set(ctx context.Context, key string, value interface{}) {
	if data, err := json.Marshal(value); err == nil {
		f.entries[key] = data
	}
}

// newTestRouter 组装完整的图书路由(内存存储,读公开写需登录)
func newTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewBookRepository()
	repo.PutAuthor(&author.Author{ID: 1, FirstName: "J.K.", LastName: "Rowling"})
	svc := book.NewService(repo)

	_, err := svc.Create(context.Background(), &book.Book{
		Title: "Harry Potter and the Philosopher's Stone", Price: 1999, AuthorID: 1,
		PublishedDate: time.Date(1997, 6, 26, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	local := cache.NewLocalCache(time.Minute)
	shared := &inMemorySharedCache{entries: make(map[string][]byte)}

	bookHandler := handler.NewBookHandler(
		appbook.NewGetBooksUseCase(svc, local),
		appbook.NewGetBookUseCase(svc, local),
		appbook.NewGetBooksByAuthorUseCase(svc, local),
		appbook.NewGetBooksByCategoryUseCase(svc, local),
		appbook.NewGetBooksByYearUseCase(svc, local),
		appbook.NewSearchBooksUseCase(svc, local),
		appbook.NewBookRatingsUseCase(svc, local),
		appbook.NewGetBooksPagedUseCase(svc, shared),
		appbook.NewGetBooksByAuthorPagedUseCase(svc, shared),
		appbook.NewGetBooksByCategoryPagedUseCase(svc, shared),
		appbook.NewSearchBooksPagedUseCase(svc, shared),
		appbook.NewCreateBookUseCase(svc),
		appbook.NewUpdateBookUseCase(svc),
		appbook.NewDeleteBookUseCase(svc),
	)

	jwtManager := jwt.NewManager("test-secret", time.Hour, time.Hour)
	requireAuth := middleware.NewAuthMiddleware(jwtManager).RequireAuth()

	r := gin.New()
	books := r.Group("/api/v1/books")
	{
		books.GET("", bookHandler.GetBooks)
		books.GET("/paged", bookHandler.GetBooksPaged)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.POST("", requireAuth, bookHandler.CreateBook)
		books.DELETE("/:id", requireAuth, bookHandler.DeleteBook)
	}
	return r, jwtManager
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestBookHandler_GetBooks(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/books", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 0, env.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Harry Potter and the Philosopher's Stone", views[0]["title"])
	assert.Equal(t, "19.99", views[0]["price_display"])
}

func TestBookHandler_GetBook(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("存在的ID返回详情", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/1", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, decodeEnvelope(t, w).Code)
	})

	t.Run("不存在的ID返回404", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/999", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 40401, decodeEnvelope(t, w).Code)
	})

	t.Run("非数字ID返回400", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 40901, decodeEnvelope(t, w).Code)
	})
}

func TestBookHandler_GetBooksPaged(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("默认分页参数", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/paged", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var view appbook.PagedBooksView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &view))
		assert.Equal(t, int64(1), view.Total)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, 10, view.PageSize)
	})

	t.Run("显式传入非法页码返回400", func(t *testing.T) {
		// Normalize只填缺省,显式非法值交给领域层拒绝
		w := doRequest(r, http.MethodGet, "/api/v1/books/paged?page=-1&page_size=10", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 40911, decodeEnvelope(t, w).Code)
	})
}

func TestBookHandler_SearchBooks(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("命中", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/search?term=Harry", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var views []map[string]interface{}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &views))
		assert.Len(t, views, 1)
	})

	t.Run("大小写敏感:小写harry不命中", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/books/search?term=harry", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var views []map[string]interface{}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &views))
		assert.Empty(t, views)
	})
}

func TestBookHandler_AuthGate(t *testing.T) {
	r, jwtManager := newTestRouter(t)

	body := `{"title":"New Book","published_date":"2020-01-01","price":1000,"author_id":1}`

	t.Run("无Token创建返回401", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/books", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 40100, decodeEnvelope(t, w).Code)
	})

	t.Run("无效Token返回401", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/books", body, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("有效Token创建成功", func(t *testing.T) {
		pair, err := jwtManager.GenerateToken(1, "admin@example.com")
		require.NoError(t, err)

		w := doRequest(r, http.MethodPost, "/api/v1/books", body, pair.AccessToken)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, decodeEnvelope(t, w).Code)
	})
}

func TestBookHandler_DeleteBook(t *testing.T) {
	r, jwtManager := newTestRouter(t)
	pair, err := jwtManager.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)

	t.Run("删除存在的图书返回204", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/api/v1/books/1", "", pair.AccessToken)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("再次删除返回404", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/api/v1/books/1", "", pair.AccessToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 40401, decodeEnvelope(t, w).Code)
	})
}
