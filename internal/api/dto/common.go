package dto

// PageMeta 分页信息
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageMeta totalPages = ceil(total / limit)
func NewPageMeta(page, limit int, total int64) PageMeta {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// UserBrief 嵌入在列表中的用户简要信息
type UserBrief struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// OwnerBrief 视频列表中嵌入的作者信息
type OwnerBrief struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ToggleState 切换操作的结果状态
type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)
