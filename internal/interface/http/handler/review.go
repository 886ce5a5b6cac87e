package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/booklibrary/internal/application/review"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	usecase *appreview.UseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(usecase *appreview.UseCase) *ReviewHandler {
	return &ReviewHandler{usecase: usecase}
}

// ListReviewsByBook 查询某本图书的书评
// @Summary      查询某本图书的书评
// @Tags         书评
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/reviews/book/{bookId} [get]
func (h *ReviewHandler) ListReviewsByBook(c *gin.Context) {
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return
	}
	views, err := h.usecase.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetReview 查询书评详情
// @Summary      查询书评详情
// @Tags         书评
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
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

// CreateReview 创建书评
// @Summary      创建书评(评分1-5)
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ReviewRequest true "书评信息"
// @Success      201 {object} response.Response
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.ReviewRequest
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

// UpdateReview 更新书评(全量替换)
// @Summary      更新书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "书评ID"
// @Param        request body dto.ReviewRequest true "书评信息"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
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

// DeleteReview 删除书评
// @Summary      删除书评
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "书评ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
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
		response.ErrorWithCode(c, 404, apperrors.ErrCodeReviewNotFound, "书评不存在")
		return
	}
	response.NoContent(c)
}
