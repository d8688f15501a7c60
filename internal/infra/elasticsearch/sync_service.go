package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"vidtube-go/pkg/logger"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// VideoDoc ES 视频文档结构
type VideoDoc struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	OwnerUsername string `json:"owner_username"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	Duration      string `json:"duration"`
	Views         int64  `json:"views"`
	IsPublished   bool   `json:"is_published"`
	CreatedAt     string `json:"created_at"`
}

// FormatTime 文档中的时间格式
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// IndexVideo 写入或覆盖单个视频文档
func (c *Client) IndexVideo(ctx context.Context, doc *VideoDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := c.es.Index(
		c.index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(doc.ID),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.String("video_id", doc.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频，文档不存在不算错误
func (c *Client) DeleteVideo(ctx context.Context, videoID string) error {
	resp, err := c.es.Delete(c.index, videoID, c.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BuildBulkBody 生成 bulk index 请求体（NDJSON）
func BuildBulkBody(index string, docs []VideoDoc) (string, error) {
	var buf strings.Builder
	for i := range docs {
		docBody, err := json.Marshal(&docs[i])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, `{"index":{"_index":%q,"_id":%q}}`, index, docs[i].ID)
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// BulkIndexVideos 批量写入视频文档
func (c *Client) BulkIndexVideos(ctx context.Context, docs []VideoDoc) (success, failed int, err error) {
	if len(docs) == 0 {
		return 0, 0, nil
	}

	body, err := BuildBulkBody(c.index, docs)
	if err != nil {
		return 0, len(docs), err
	}

	resp, err := c.es.Bulk(strings.NewReader(body), c.es.Bulk.WithContext(ctx))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(docs), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// BuildSearchQuery 全文搜索查询：只返回公开视频，标题权重高于描述
func BuildSearchQuery(q string, from, size int) map[string]interface{} {
	boolQ := map[string]interface{}{
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"is_published": true}},
		},
	}

	sort := []interface{}{
		map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
	}

	if q = strings.TrimSpace(q); q != "" {
		boolQ["must"] = []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":    q,
					"fields":   []string{"title^3", "description"},
					"type":     "best_fields",
					"operator": "or",
				},
			},
		}
		sort = append([]interface{}{map[string]interface{}{"_score": map[string]string{"order": "desc"}}}, sort...)
	}

	return map[string]interface{}{
		"query":   map[string]interface{}{"bool": boolQ},
		"_source": []string{"id"},
		"from":    from,
		"size":    size,
		"sort":    sort,
	}
}

// SearchVideos 返回命中的视频 ID（按相关度）与总数
func (c *Client) SearchVideos(ctx context.Context, q string, from, size int) ([]string, int64, error) {
	queryJSON, err := json.Marshal(BuildSearchQuery(q, from, size))
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(queryJSON)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID string `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, 0, fmt.Errorf("decode ES response: %w", err)
	}

	ids := make([]string, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, esResp.Hits.Total.Value, nil
}
