package service

import (
	"context"
	"strings"

	"vidtube-go/internal/api/dto"
	infraES "vidtube-go/internal/infra/elasticsearch"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

const (
	SourceElasticsearch = "elasticsearch"
	SourceDatabase      = "database"

	reindexBatchSize = 500
)

type SearchService struct {
	videos   VideoStore
	users    UserStore
	searcher VideoSearcher
	indexer  VideoIndexer
}

// NewSearchService searcher 和 indexer 可以为 nil，此时搜索直接走数据库
func NewSearchService(videos VideoStore, users UserStore, searcher VideoSearcher, indexer VideoIndexer) *SearchService {
	return &SearchService{videos: videos, users: users, searcher: searcher, indexer: indexer}
}

// SearchVideos 搜索视频（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchVideos(ctx context.Context, req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	q := strings.TrimSpace(req.Q)

	if s.searcher != nil {
		data, err := s.searchFromES(ctx, q, page, limit)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("ES search failed, fallback to DB", zap.String("q", q), zap.Error(err))
	}
	return s.searchFromDB(ctx, q, page, limit)
}

func (s *SearchService) searchFromES(ctx context.Context, q string, page, limit int) (*dto.SearchVideoData, error) {
	ids, total, err := s.searcher.SearchVideos(ctx, q, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	found, err := s.videos.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Video, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}

	// 保持 ES 的相关度顺序；索引可能落后于数据库，未公开或已删除的视频在这里过滤掉
	videos := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok && v.IsPublished {
			videos = append(videos, v)
		}
	}

	infos, err := joinOwners(ctx, s.users, videos)
	if err != nil {
		return nil, err
	}
	return &dto.SearchVideoData{
		Videos:   infos,
		Source:   SourceElasticsearch,
		PageMeta: dto.NewPageMeta(page, limit, total),
	}, nil
}

func (s *SearchService) searchFromDB(ctx context.Context, q string, page, limit int) (*dto.SearchVideoData, error) {
	videos, total, err := s.videos.ListPublished(ctx, repository.VideoFilter{
		Query:  q,
		Order:  repository.VideoOrder{Column: "created_at", Desc: true},
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	infos, err := joinOwners(ctx, s.users, videos)
	if err != nil {
		return nil, err
	}
	return &dto.SearchVideoData{
		Videos:   infos,
		Source:   SourceDatabase,
		PageMeta: dto.NewPageMeta(page, limit, total),
	}, nil
}

// Reindex 把数据库中全部公开视频批量写入搜索索引，返回成功和失败的文档数
func (s *SearchService) Reindex(ctx context.Context) (indexed, failed int, err error) {
	if s.indexer == nil {
		return 0, 0, &Error{Kind: KindUnavailable, Msg: "搜索服务未启用"}
	}

	for offset := 0; ; offset += reindexBatchSize {
		videos, _, err := s.videos.ListPublished(ctx, repository.VideoFilter{
			Order:  repository.VideoOrder{Column: "created_at"},
			Offset: offset,
			Limit:  reindexBatchSize,
		})
		if err != nil {
			return indexed, failed, err
		}
		if len(videos) == 0 {
			break
		}

		docs, err := s.toDocs(ctx, videos)
		if err != nil {
			return indexed, failed, err
		}
		ok, bad, err := s.indexer.BulkIndexVideos(ctx, docs)
		indexed += ok
		failed += bad
		if err != nil {
			return indexed, failed, err
		}
		logger.Info("Reindex batch done", zap.Int("offset", offset), zap.Int("indexed", ok), zap.Int("failed", bad))

		if len(videos) < reindexBatchSize {
			break
		}
	}
	return indexed, failed, nil
}

func (s *SearchService) toDocs(ctx context.Context, videos []model.Video) ([]infraES.VideoDoc, error) {
	ownerIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		ownerIDs = append(ownerIDs, v.OwnerID)
	}
	owners, err := s.users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	byID := indexUsers(owners)

	docs := make([]infraES.VideoDoc, 0, len(videos))
	for _, v := range videos {
		doc := infraES.VideoDoc{
			ID:          v.ID,
			OwnerID:     v.OwnerID,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			CreatedAt:   infraES.FormatTime(v.CreatedAt),
		}
		if owner, ok := byID[v.OwnerID]; ok {
			doc.OwnerUsername = owner.Username
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
