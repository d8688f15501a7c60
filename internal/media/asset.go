// Package media 处理上传媒体的通用逻辑：托管资源标识与视频时长探测。
package media

import (
	"net/url"
	"path"
	"strings"
)

// Asset 已上传到媒体托管服务的资源
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// PublicIDFromURL 从资源 URL 推导托管服务中的 publicId：取最后一段路径并去掉扩展名。
// 例如 http://host/bucket/abc.mp4 -> abc
func PublicIDFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	if base == "/" || base == "." {
		return ""
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
