package book

import (
	"context"
	"fmt"
)

// LocalCache 本地缓存端口(第一层)
// 未分页的整集合读走这一层:同进程读写,存any值,滑动过期
type LocalCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

// SharedCache 共享缓存端口(第二层)
// 分页读走这一层:跨实例共享,JSON文本编码,绝对过期
// Get返回是否命中;实现方必须把后端故障和解码失败都降级为未命中
type SharedCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// 缓存键按完整参数元组构造,参数不同的请求互不串扰
// 命名空间统一为catalog:前缀
func keyBooksAll() string                 { return "catalog:books:all" }
func keyBookDetail(id uint) string        { return fmt.Sprintf("catalog:books:detail:%d", id) }
func keyBooksByAuthor(id uint) string     { return fmt.Sprintf("catalog:books:author:%d", id) }
func keyBooksByCategory(id uint) string   { return fmt.Sprintf("catalog:books:category:%d", id) }
func keyBooksByYear(year int) string      { return fmt.Sprintf("catalog:books:year:%d", year) }
func keyBooksSearch(term string) string   { return fmt.Sprintf("catalog:books:search:%s", term) }
func keyBookRatings() string              { return "catalog:books:ratings" }

func keyBooksPaged(page, size int) string {
	return fmt.Sprintf("catalog:books:paged:%d:%d", page, size)
}
func keyBooksByAuthorPaged(id uint, page, size int) string {
	return fmt.Sprintf("catalog:books:author:%d:paged:%d:%d", id, page, size)
}
func keyBooksByCategoryPaged(id uint, page, size int) string {
	return fmt.Sprintf("catalog:books:category:%d:paged:%d:%d", id, page, size)
}
func keyBooksSearchPaged(term string, page, size int) string {
	return fmt.Sprintf("catalog:books:search:%s:paged:%d:%d", term, page, size)
}
