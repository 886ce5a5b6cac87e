package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/booklibrary/internal/application/author"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	usecase *appauthor.UseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(usecase *appauthor.UseCase) *AuthorHandler {
	return &AuthorHandler{usecase: usecase}
}

// ListAuthors 查询全部作者
// @Summary      查询全部作者
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetAuthor 查询作者详情
// @Summary      查询作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
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

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      201 {object} response.Response
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	appReq, err := req.ToRequest()
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), appReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// UpdateAuthor 更新作者(全量替换)
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	appReq, err := req.ToRequest()
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), id, appReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// DeleteAuthor 删除作者
// @Summary      删除作者(仍被图书引用时拒绝)
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
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
		response.ErrorWithCode(c, 404, apperrors.ErrCodeAuthorNotFound, "作者不存在")
		return
	}
	response.NoContent(c)
}
