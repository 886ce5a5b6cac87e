package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// BookHandler 图书HTTP处理器
// 纯分发层:参数绑定→调用应用层用例→映射响应,不含业务逻辑
type BookHandler struct {
	getBooks            *appbook.GetBooksUseCase
	getBook             *appbook.GetBookUseCase
	getByAuthor         *appbook.GetBooksByAuthorUseCase
	getByCategory       *appbook.GetBooksByCategoryUseCase
	getByYear           *appbook.GetBooksByYearUseCase
	search              *appbook.SearchBooksUseCase
	ratings             *appbook.BookRatingsUseCase
	getBooksPaged       *appbook.GetBooksPagedUseCase
	getByAuthorPaged    *appbook.GetBooksByAuthorPagedUseCase
	getByCategoryPaged  *appbook.GetBooksByCategoryPagedUseCase
	searchPaged         *appbook.SearchBooksPagedUseCase
	createBook          *appbook.CreateBookUseCase
	updateBook          *appbook.UpdateBookUseCase
	deleteBook          *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	getBooks *appbook.GetBooksUseCase,
	getBook *appbook.GetBookUseCase,
	getByAuthor *appbook.GetBooksByAuthorUseCase,
	getByCategory *appbook.GetBooksByCategoryUseCase,
	getByYear *appbook.GetBooksByYearUseCase,
	search *appbook.SearchBooksUseCase,
	ratings *appbook.BookRatingsUseCase,
	getBooksPaged *appbook.GetBooksPagedUseCase,
	getByAuthorPaged *appbook.GetBooksByAuthorPagedUseCase,
	getByCategoryPaged *appbook.GetBooksByCategoryPagedUseCase,
	searchPaged *appbook.SearchBooksPagedUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		getBooks:           getBooks,
		getBook:            getBook,
		getByAuthor:        getByAuthor,
		getByCategory:      getByCategory,
		getByYear:          getByYear,
		search:             search,
		ratings:            ratings,
		getBooksPaged:      getBooksPaged,
		getByAuthorPaged:   getByAuthorPaged,
		getByCategoryPaged: getByCategoryPaged,
		searchPaged:        searchPaged,
		createBook:         createBook,
		updateBook:         updateBook,
		deleteBook:         deleteBook,
	}
}

// parseID 解析路径中的uint参数
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数"+name+"必须是正整数")
		return 0, false
	}
	return uint(id), true
}

// GetBooks 查询全部图书
// @Summary      查询全部图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/books [get]
func (h *BookHandler) GetBooks(c *gin.Context) {
	views, err := h.getBooks.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetBook 查询图书详情
// @Summary      查询图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// GetBooksByAuthor 按作者查询图书
// @Summary      按作者查询图书
// @Tags         图书
// @Produce      json
// @Param        authorId path int true "作者ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/author/{authorId} [get]
func (h *BookHandler) GetBooksByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "authorId")
	if !ok {
		return
	}
	views, err := h.getByAuthor.Execute(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetBooksByCategory 按分类查询图书
// @Summary      按分类查询图书
// @Tags         图书
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/category/{categoryId} [get]
func (h *BookHandler) GetBooksByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}
	views, err := h.getByCategory.Execute(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetBooksByYear 按出版年份查询图书
// @Summary      按出版年份查询图书
// @Tags         图书
// @Produce      json
// @Param        year path int true "出版年份"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/year/{year} [get]
func (h *BookHandler) GetBooksByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数year必须是整数")
		return
	}
	views, err := h.getByYear.Execute(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// SearchBooks 搜索图书
// @Summary      搜索图书(书名/描述/作者姓名子串匹配)
// @Tags         图书
// @Produce      json
// @Param        term query string false "搜索关键词"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	views, err := h.search.Execute(c.Request.Context(), req.Term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetBookRatings 查询图书平均评分
// @Summary      查询图书平均评分(仅含有书评的图书)
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/books/ratings [get]
func (h *BookHandler) GetBookRatings(c *gin.Context) {
	ratings, err := h.ratings.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ratings)
}

// GetBooksPaged 分页查询全部图书
// @Summary      分页查询全部图书
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "分页参数非法"
// @Router       /api/v1/books/paged [get]
func (h *BookHandler) GetBooksPaged(c *gin.Context) {
	var req dto.PagingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	req.Normalize()

	view, err := h.getBooksPaged.Execute(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// GetBooksByAuthorPaged 分页按作者查询图书
// @Summary      分页按作者查询图书
// @Tags         图书
// @Produce      json
// @Param        authorId path int true "作者ID"
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/author/{authorId}/paged [get]
func (h *BookHandler) GetBooksByAuthorPaged(c *gin.Context) {
	authorID, ok := parseID(c, "authorId")
	if !ok {
		return
	}
	var req dto.PagingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	req.Normalize()

	view, err := h.getByAuthorPaged.Execute(c.Request.Context(), authorID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// GetBooksByCategoryPaged 分页按分类查询图书
// @Summary      分页按分类查询图书
// @Tags         图书
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/category/{categoryId}/paged [get]
func (h *BookHandler) GetBooksByCategoryPaged(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}
	var req dto.PagingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	req.Normalize()

	view, err := h.getByCategoryPaged.Execute(c.Request.Context(), categoryID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// SearchBooksPaged 分页搜索图书
// @Summary      分页搜索图书
// @Tags         图书
// @Produce      json
// @Param        term query string false "搜索关键词"
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/search/paged [get]
func (h *BookHandler) SearchBooksPaged(c *gin.Context) {
	var search dto.SearchRequest
	if err := c.ShouldBindQuery(&search); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	var paging dto.PagingRequest
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	paging.Normalize()

	view, err := h.searchPaged.Execute(c.Request.Context(), search.Term, paging.Page, paging.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// CreateBook 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	date, err := req.ParseDate()
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.createBook.Execute(c.Request.Context(), req.ToCreateRequest(date))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// UpdateBook 更新图书(全量替换)
// @Summary      更新图书
// @Description  全量替换可变字段;请求体ID与路径ID不一致时拒绝
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误或ID不一致"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	date, err := req.ParseDate()
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.updateBook.Execute(c.Request.Context(), id, req.ToUpdateRequest(date))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	existed, err := h.deleteBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !existed {
		response.ErrorWithCode(c, 404, apperrors.ErrCodeBookNotFound, "图书不存在")
		return
	}
	response.NoContent(c)
}
