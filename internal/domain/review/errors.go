package review

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "书评不存在")

	// ErrInvalidRating 评分必须是1-5的整数
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeValidation, "评分必须在1到5之间")

	// ErrCommentTooLong 评论超长(最多1000字符)
	ErrCommentTooLong = apperrors.New(apperrors.ErrCodeValidation, "评论不能超过1000字符")

	// ErrReviewerTooLong 评论人姓名/邮箱超长(各最多100字符)
	ErrReviewerTooLong = apperrors.New(apperrors.ErrCodeValidation, "评论人姓名和邮箱不能超过100字符")

	// ErrBookRequired 书评必须关联图书
	ErrBookRequired = apperrors.New(apperrors.ErrCodeValidation, "书评必须关联图书ID")

	// ErrIDMismatch 更新请求体中的ID与目标ID不一致
	ErrIDMismatch = apperrors.New(apperrors.ErrCodeIDMismatch, "请求体ID与路径ID不一致")
)
