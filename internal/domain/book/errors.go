package book

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleRequired 书名不能为空
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeValidation, "书名不能为空")

	// ErrTitleTooLong 书名超长(最多200字符)
	ErrTitleTooLong = apperrors.New(apperrors.ErrCodeValidation, "书名不能超过200字符")

	// ErrDescriptionTooLong 描述超长(最多1000字符)
	ErrDescriptionTooLong = apperrors.New(apperrors.ErrCodeValidation, "图书描述不能超过1000字符")

	// ErrISBNTooLong ISBN超长(最多50字符)
	ErrISBNTooLong = apperrors.New(apperrors.ErrCodeValidation, "ISBN不能超过50字符")

	// ErrPublisherTooLong 出版社名称超长(最多100字符)
	ErrPublisherTooLong = apperrors.New(apperrors.ErrCodeValidation, "出版社名称不能超过100字符")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeValidation, "价格不能为负数")

	// ErrAuthorRequired 作者引用不能为空
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeValidation, "作者ID不能为空")

	// ErrIDMismatch 更新请求体中的ID与目标ID不一致
	ErrIDMismatch = apperrors.New(apperrors.ErrCodeIDMismatch, "请求体ID与路径ID不一致")

	// ErrInvalidPaging 分页参数非法(页码和页大小都必须>=1)
	ErrInvalidPaging = apperrors.New(apperrors.ErrCodeInvalidPaging, "分页参数必须大于等于1")
)
