package service

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/metrics"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// edgeOps 描述一条关系边（点赞或订阅）的读写方式，键由调用方在闭包中固定
type edgeOps[T any] struct {
	kind   string
	find   func(ctx context.Context) (*T, error)
	id     func(edge *T) string
	create func(ctx context.Context) (*T, error)
	remove func(ctx context.Context, id string) (bool, error)
}

type toggleOutcome[T any] struct {
	State dto.ToggleState
	Edge  *T
}

// toggleEdge 存在则删除，不存在则创建。
// 不加锁：并发请求由唯一索引兜底。创建撞上唯一索引说明另一个请求刚刚创建，结果为 added；
// 删除影响 0 行说明另一个请求刚刚删除，结果为 removed。两种情况都不向调用方报错。
func toggleEdge[T any](ctx context.Context, ops edgeOps[T]) (*toggleOutcome[T], error) {
	existing, err := ops.find(ctx)
	switch {
	case err == nil:
		removed, err := ops.remove(ctx, ops.id(existing))
		if err != nil {
			return nil, err
		}
		if !removed {
			metrics.RecordToggleConflict(ops.kind)
		}
		metrics.RecordToggle(ops.kind, string(dto.ToggleRemoved))
		return &toggleOutcome[T]{State: dto.ToggleRemoved}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	edge, err := ops.create(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		metrics.RecordToggleConflict(ops.kind)
		edge, err = ops.find(ctx)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	metrics.RecordToggle(ops.kind, string(dto.ToggleAdded))
	return &toggleOutcome[T]{State: dto.ToggleAdded, Edge: edge}, nil
}
