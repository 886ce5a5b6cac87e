package category

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameRequired 分类名不能为空
	ErrNameRequired = apperrors.New(apperrors.ErrCodeValidation, "分类名不能为空")

	// ErrNameTooLong 分类名超长(最多100字符)
	ErrNameTooLong = apperrors.New(apperrors.ErrCodeValidation, "分类名不能超过100字符")

	// ErrDescriptionTooLong 描述超长(最多500字符)
	ErrDescriptionTooLong = apperrors.New(apperrors.ErrCodeValidation, "分类描述不能超过500字符")

	// ErrNameExists 分类名已存在(唯一约束)
	ErrNameExists = apperrors.New(apperrors.ErrCodeDuplicate, "分类名已存在")

	// ErrIDMismatch 更新请求体中的ID与目标ID不一致
	ErrIDMismatch = apperrors.New(apperrors.ErrCodeIDMismatch, "请求体ID与路径ID不一致")
)
