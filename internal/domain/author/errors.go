package author

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrNameRequired 姓和名都不能为空
	ErrNameRequired = apperrors.New(apperrors.ErrCodeValidation, "作者姓名不能为空")

	// ErrNameTooLong 姓/名超长(各最多100字符)
	ErrNameTooLong = apperrors.New(apperrors.ErrCodeValidation, "作者姓名不能超过100字符")

	// ErrBiographyTooLong 简介超长(最多500字符)
	ErrBiographyTooLong = apperrors.New(apperrors.ErrCodeValidation, "作者简介不能超过500字符")

	// ErrIDMismatch 更新请求体中的ID与目标ID不一致
	ErrIDMismatch = apperrors.New(apperrors.ErrCodeIDMismatch, "请求体ID与路径ID不一致")
)
