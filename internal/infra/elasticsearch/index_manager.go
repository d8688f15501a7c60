package elasticsearch

import (
	"context"
	"fmt"
	"strings"

	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideosIndexMapping videos 索引的 mapping
func VideosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "keyword"},
				"owner_id": {"type": "keyword"},
				"owner_username": {"type": "keyword"},
				"title": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"description": {"type": "text", "analyzer": "standard"},
				"thumbnail": {"type": "keyword", "index": false},
				"duration": {"type": "keyword", "index": false},
				"views": {"type": "long"},
				"is_published": {"type": "boolean"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureVideosIndex 确保 videos 索引存在，不存在则创建
func (c *Client) EnsureVideosIndex(ctx context.Context) error {
	resp, err := c.es.Indices.Exists([]string{c.index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", c.index))
		return nil
	}

	resp, err = c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(VideosIndexMapping())),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", c.index))
	return nil
}
