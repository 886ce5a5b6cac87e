package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/author"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// BookRepository 内存图书仓储
// 设计说明:
// 1. 实现domain/book的Repository接口,用于单元测试(不依赖MySQL)
// 2. RWMutex保护的map存储;读写都返回深拷贝,避免调用方共享内部状态
// 3. 查询语义与MySQL实现对齐:子串匹配大小写敏感、分页先计数后切片、
//    平均评分只覆盖有书评的图书
type BookRepository struct {
	mu         sync.RWMutex
	books      map[uint]*book.Book
	authors    map[uint]*author.Author
	categories map[uint]*category.Category
	nextBookID uint
	nextRevID  uint
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() *BookRepository {
	return &BookRepository{
		books:      make(map[uint]*book.Book),
		authors:    make(map[uint]*author.Author),
		categories: make(map[uint]*category.Category),
	}
}

// PutAuthor 注册作者(测试夹具用)
func (r *BookRepository) PutAuthor(a *author.Author) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authors[a.ID] = a
}

// PutCategory 注册分类(测试夹具用)
func (r *BookRepository) PutCategory(c *category.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

// AddReview 给图书追加书评(测试夹具用)
// 图书不存在时返回ErrBookNotFound
func (r *BookRepository) AddReview(rv *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[rv.BookID]
	if !ok {
		return book.ErrBookNotFound
	}
	r.nextRevID++
	rv.ID = r.nextRevID
	b.Reviews = append(b.Reviews, rv)
	return nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(*book.Book) bool { return true }), nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return cloneBook(b), nil
}

func (r *BookRepository) FindByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b *book.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *BookRepository) FindByCategory(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b *book.Book) bool {
		for _, id := range b.CategoryIDs {
			if id == categoryID {
				return true
			}
		}
		return false
	}), nil
}

func (r *BookRepository) FindByYear(ctx context.Context, year int) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b *book.Book) bool { return b.PublishedDate.Year() == year }), nil
}

func (r *BookRepository) Search(ctx context.Context, term string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(matchTerm(term)), nil
}

func (r *BookRepository) AverageRatings(ctx context.Context) (map[uint]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ratings := make(map[uint]float64)
	for id, b := range r.books {
		if len(b.Reviews) == 0 {
			continue
		}
		sum := 0
		for _, rv := range b.Reviews {
			sum += rv.Rating
		}
		ratings[id] = float64(sum) / float64(len(b.Reviews))
	}
	return ratings, nil
}

func (r *BookRepository) FindAllPaged(ctx context.Context, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paged(r.filter(func(*book.Book) bool { return true }), pageNumber, pageSize), nil
}

func (r *BookRepository) FindByAuthorPaged(ctx context.Context, authorID uint, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paged(r.filter(func(b *book.Book) bool { return b.AuthorID == authorID }), pageNumber, pageSize), nil
}

func (r *BookRepository) FindByCategoryPaged(ctx context.Context, categoryID uint, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paged(r.filter(func(b *book.Book) bool {
		for _, id := range b.CategoryIDs {
			if id == categoryID {
				return true
			}
		}
		return false
	}), pageNumber, pageSize), nil
}

func (r *BookRepository) SearchPaged(ctx context.Context, term string, pageNumber, pageSize int) (*book.PagedResult[*book.Book], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paged(r.filter(matchTerm(term)), pageNumber, pageSize), nil
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextBookID++
	b.ID = r.nextBookID
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := cloneBook(b)
	r.hydrate(stored)
	r.books[stored.ID] = stored
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}

	stored := cloneBook(b)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	stored.Reviews = existing.Reviews // 书评不随图书更新而变
	r.hydrate(stored)
	r.books[stored.ID] = stored
	b.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

// hydrate 按引用ID装配关联实体
func (r *BookRepository) hydrate(b *book.Book) {
	if a, ok := r.authors[b.AuthorID]; ok {
		b.Author = a
	}
	b.Categories = b.Categories[:0]
	for _, id := range b.CategoryIDs {
		if c, ok := r.categories[id]; ok {
			b.Categories = append(b.Categories, c)
		}
	}
}

// filter 过滤并按ID升序返回拷贝
func (r *BookRepository) filter(pred func(*book.Book) bool) []*book.Book {
	result := make([]*book.Book, 0)
	for _, b := range r.books {
		if pred(b) {
			result = append(result, cloneBook(b))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func matchTerm(term string) func(*book.Book) bool {
	return func(b *book.Book) bool {
		if strings.Contains(b.Title, term) || strings.Contains(b.Description, term) {
			return true
		}
		if b.Author != nil {
			return strings.Contains(b.Author.FirstName, term) || strings.Contains(b.Author.LastName, term)
		}
		return false
	}
}

// paged 先计数后切片
func paged(all []*book.Book, pageNumber, pageSize int) *book.PagedResult[*book.Book] {
	total := int64(len(all))
	start := (pageNumber - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return book.NewPagedResult(all[start:end], total, pageNumber, pageSize)
}

func cloneBook(b *book.Book) *book.Book {
	c := *b
	c.CategoryIDs = append([]uint(nil), b.CategoryIDs...)
	c.Categories = append([]*category.Category(nil), b.Categories...)
	c.Reviews = append([]*review.Review(nil), b.Reviews...)
	return &c
}
