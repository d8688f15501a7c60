package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"
	"vidtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	videoExtensions = map[string]bool{
		".mp4": true, ".avi": true, ".mov": true,
		".mkv": true, ".flv": true, ".webm": true,
	}
	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	}
)

// UploadOptions 上传文件的临时目录和大小限制
type UploadOptions struct {
	TempDir       string
	MaxVideoBytes int64
	MaxImageBytes int64
}

// parsePagination page 默认 1，limit 默认 10，越界的值交给 service 归一化
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// currentUser 受保护路由上一定存在，缺失说明路由没有挂认证中间件
func currentUser(c *gin.Context) (string, bool) {
	id, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
	}
	return id, ok
}

func bindFailed(c *gin.Context, err error) {
	response.BadRequest(c, "请求参数无效", err.Error())
}

// handleError 按业务错误类别映射状态码，未知错误记录日志后返回 500
func handleError(c *gin.Context, op string, err error) {
	switch service.KindOf(err) {
	case service.KindInvalidInput, service.KindInvalidState:
		response.BadRequest(c, err.Error())
	case service.KindUnauthorized:
		response.Unauthorized(c, err.Error())
	case service.KindForbidden:
		response.Forbidden(c, err.Error())
	case service.KindNotFound:
		response.NotFound(c, err.Error())
	case service.KindConflict:
		response.Conflict(c, err.Error())
	case service.KindUnavailable:
		logger.Warn(op+" unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.ServiceUnavailable(c, "服务暂时不可用，请稍后重试")
	default:
		logger.Error(op+" failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}

// uploadError 上传文件校验失败
type uploadError struct {
	field string
	msg   string
}

func (e *uploadError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.msg)
}

// saveUpload 把 multipart 文件保存到临时目录，返回本地路径；字段缺失时返回空路径。
// 调用方负责在请求结束后删除文件。
func saveUpload(c *gin.Context, field string, allowed map[string]bool, maxBytes int64, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", &uploadError{field: field, msg: "无法读取文件"}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", &uploadError{field: field, msg: "不支持的文件类型 " + ext}
	}
	if file.Size == 0 || (maxBytes > 0 && file.Size > maxBytes) {
		return "", &uploadError{field: field, msg: fmt.Sprintf("文件大小须在 1 到 %d 字节之间", maxBytes)}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// removeTemp 删除请求中保存的临时文件
func removeTemp(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Warn("Remove temp upload failed", zap.String("path", p), zap.Error(err))
		}
	}
}

// respondUploadError 上传校验失败返回 400，其余错误返回 500
func respondUploadError(c *gin.Context, err error) {
	var ue *uploadError
	if errors.As(err, &ue) {
		response.BadRequest(c, "上传文件无效", ue.Error())
		return
	}
	handleError(c, "Save upload", err)
}
