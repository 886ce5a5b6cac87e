package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(MySQL实现、内存实现)
// 2. 查询面是固定的枚举集合,不是通用查询DSL
// 3. 所有读操作返回的Book都已完成关联加载(Author/Categories/Reviews)
// 4. "不存在"与"空集合"严格区分:单条查询未命中返回ErrBookNotFound,
//    列表查询未命中返回空切片
type Repository interface {
	// FindAll 查询全部图书(顺序由存储层决定)
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书,不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByAuthor 查询某作者的全部图书
	FindByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// FindByCategory 查询某分类下的全部图书(经book_categories关联)
	FindByCategory(ctx context.Context, categoryID uint) ([]*Book, error)

	// FindByYear 查询某出版年份的全部图书
	FindByYear(ctx context.Context, year int) ([]*Book, error)

	// Search 子串搜索:书名 OR 描述 OR 作者姓/名包含term
	// 语义是朴素的子串匹配,不做分词和排序打分
	Search(ctx context.Context, term string) ([]*Book, error)

	// AverageRatings 图书ID → 评分算术平均值
	// 只包含至少有一条书评的图书;零书评图书不出现在结果中
	AverageRatings(ctx context.Context) (map[uint]float64, error)

	// FindAllPaged 分页查询全部图书
	// TotalCount基于未分页集合计算,再做skip/take切片
	FindAllPaged(ctx context.Context, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// FindByAuthorPaged 分页查询某作者的图书
	FindByAuthorPaged(ctx context.Context, authorID uint, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// FindByCategoryPaged 分页查询某分类的图书
	FindByCategoryPaged(ctx context.Context, categoryID uint, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// SearchPaged 分页搜索,过滤谓词与Search一致
	SearchPaged(ctx context.Context, term string, pageNumber, pageSize int) (*PagedResult[*Book], error)

	// Create 创建图书并维护分类关联,回填自增ID
	Create(ctx context.Context, book *Book) error

	// Update 按ID全量覆盖可变字段,不存在时返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书及其关联(分类关联、书评)
	// 返回是否确实存在过该记录
	Delete(ctx context.Context, id uint) (bool, error)
}
