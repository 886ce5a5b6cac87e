package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/booklibrary/internal/application/category"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	usecase *appcategory.UseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(usecase *appcategory.UseCase) *CategoryHandler {
	return &CategoryHandler{usecase: usecase}
}

// ListCategories 查询全部分类
// @Summary      查询全部分类
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetCategory 查询分类详情
// @Summary      查询分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// CreateCategory 创建分类
// @Summary      创建分类(分类名唯一)
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      201 {object} response.Response
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), appcategory.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// UpdateCategory 更新分类(全量替换)
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), id, appcategory.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// DeleteCategory 删除分类
// @Summary      删除分类(图书关联随之清理)
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	existed, err := h.usecase.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !existed {
		response.ErrorWithCode(c, 404, apperrors.ErrCodeCategoryNotFound, "分类不存在")
		return
	}
	response.NoContent(c)
}
