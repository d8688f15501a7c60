package dto

// SearchVideoRequest 搜索请求参数
type SearchVideoRequest struct {
	Q     string `form:"q"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// SearchVideoData 搜索结果，Source 表示结果来自 elasticsearch 还是 database
type SearchVideoData struct {
	Videos []VideoInfo `json:"videos"`
	Source string      `json:"source"`
	PageMeta
}
