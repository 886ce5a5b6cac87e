package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
// 注意：存储层故障一律走此路径，不允许伪装成"资源不存在"
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeStoreError,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeStoreError,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、缓存后端异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal   = 50000 // 内部错误
	ErrCodeStoreError = 50001 // 存储层错误（连接、约束冲突等）
	ErrCodeCacheError = 50002 // 缓存后端错误

	// 认证错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期

	// 资源不存在（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound     = 40401 // 图书不存在
	ErrCodeAuthorNotFound   = 40402 // 作者不存在
	ErrCodeCategoryNotFound = 40403 // 分类不存在
	ErrCodeReviewNotFound   = 40404 // 书评不存在

	// 校验错误（40900-40999）
	ErrCodeValidation    = 40900 // 字段校验失败（必填缺失、超长、评分越界）
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeIDMismatch    = 40910 // 更新请求体ID与目标ID不一致
	ErrCodeInvalidPaging = 40911 // 分页参数非法
	ErrCodeDuplicate     = 40912 // 唯一约束冲突(如分类名重复)
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal   = New(ErrCodeInternal, "系统内部错误")
	ErrStoreError = New(ErrCodeStoreError, "存储服务错误")
	ErrCacheError = New(ErrCodeCacheError, "缓存服务错误")

	// 认证
	ErrUnauthorized = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token已过期")

	// 参数
	ErrBindError = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: ErrCodeInternal, Message: "系统内部错误", Err: err}
}

// IsNotFound 判断是否为"资源不存在"类错误（40400-40499）
// 用途：Handler据此返回404而非500
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40400 && appErr.Code < 40500
}

// IsValidation 判断是否为校验类错误（40900-40999）
func IsValidation(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40900 && appErr.Code < 41000
}
