package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Kind 业务错误类别，由 handler 统一映射为 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidState
	KindUnavailable
)

// Error 业务错误
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// KindOf 返回错误类别；存储超时/取消归为 Unavailable，其余未知错误为 Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUnavailable
	}
	return KindInternal
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

var (
	ErrInvalidUserID     = invalidInput("无效的用户ID")
	ErrInvalidVideoID    = invalidInput("无效的视频ID")
	ErrInvalidCommentID  = invalidInput("无效的评论ID")
	ErrInvalidTweetID    = invalidInput("无效的动态ID")
	ErrInvalidPlaylistID = invalidInput("无效的播放列表ID")
	ErrInvalidChannelID  = invalidInput("无效的频道ID")

	ErrTitleRequired       = invalidInput("标题不能为空")
	ErrDescriptionRequired = invalidInput("描述不能为空")
	ErrContentRequired     = invalidInput("内容不能为空")
	ErrNameRequired        = invalidInput("名称不能为空")
	ErrVideoFileRequired   = invalidInput("缺少视频文件")
	ErrThumbnailRequired   = invalidInput("缺少封面图片")
	ErrImageRequired       = invalidInput("缺少图片文件")
	ErrInvalidUsername     = invalidInput("用户名须为 3-64 位小写字母、数字、下划线或点")

	ErrUserNotFound     = &Error{Kind: KindNotFound, Msg: "用户不存在"}
	ErrChannelNotFound  = &Error{Kind: KindNotFound, Msg: "频道不存在"}
	ErrVideoNotFound    = &Error{Kind: KindNotFound, Msg: "视频不存在"}
	ErrCommentNotFound  = &Error{Kind: KindNotFound, Msg: "评论不存在"}
	ErrTweetNotFound    = &Error{Kind: KindNotFound, Msg: "动态不存在"}
	ErrPlaylistNotFound = &Error{Kind: KindNotFound, Msg: "播放列表不存在"}
	ErrVideoNotInList   = &Error{Kind: KindNotFound, Msg: "播放列表中没有该视频"}

	ErrVideoNoPermission    = &Error{Kind: KindForbidden, Msg: "没有权限操作该视频"}
	ErrCommentNoPermission  = &Error{Kind: KindForbidden, Msg: "没有权限操作该评论"}
	ErrTweetNoPermission    = &Error{Kind: KindForbidden, Msg: "没有权限操作该动态"}
	ErrPlaylistNoPermission = &Error{Kind: KindForbidden, Msg: "没有权限操作该播放列表"}

	ErrPlaylistEmpty = &Error{Kind: KindInvalidState, Msg: "播放列表为空"}

	ErrUsernameExists    = &Error{Kind: KindConflict, Msg: "用户名已存在"}
	ErrInvalidCredential = &Error{Kind: KindUnauthorized, Msg: "用户名或密码错误"}
)

// notFound 把存储层的 ErrRecordNotFound 换成对应的业务错误
func notFound(err error, target *Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
