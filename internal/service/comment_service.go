package service

import (
	"context"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
)

type CommentService struct {
	comments CommentStore
	videos   VideoStore
	users    UserStore
}

func NewCommentService(comments CommentStore, videos VideoStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, videos: videos, users: users}
}

func toCommentInfo(c *model.Comment, owner *model.User) dto.CommentInfo {
	return dto.CommentInfo{
		ID:        c.ID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Owner:     toUserBrief(owner),
	}
}

// List 视频评论分页，最新在前，每条附带作者信息。作者已不存在的评论不返回。
func (s *CommentService) List(ctx context.Context, videoID string, page, limit int) (*dto.CommentListData, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}

	page, limit = normalizePage(page, limit)
	comments, total, err := s.comments.ListByVideo(ctx, videoID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		ownerIDs = append(ownerIDs, c.OwnerID)
	}
	owners, err := s.users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	byID := indexUsers(owners)

	list := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		owner, ok := byID[comments[i].OwnerID]
		if !ok {
			continue
		}
		list = append(list, toCommentInfo(&comments[i], owner))
	}

	return &dto.CommentListData{Comments: list, PageMeta: dto.NewPageMeta(page, limit, total)}, nil
}

// Create 发表评论
func (s *CommentService) Create(ctx context.Context, actorID, videoID, content string) (*dto.CommentInfo, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	owner, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	comment := &model.Comment{OwnerID: actorID, VideoID: videoID, Content: content}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	info := toCommentInfo(comment, owner)
	return &info, nil
}

func (s *CommentService) ownedComment(ctx context.Context, actorID, commentID string) (*model.Comment, error) {
	if !validID(commentID) {
		return nil, ErrInvalidCommentID
	}
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	if comment.OwnerID != actorID {
		return nil, ErrCommentNoPermission
	}
	return comment, nil
}

// Update 修改评论内容，仅作者本人
func (s *CommentService) Update(ctx context.Context, actorID, commentID, content string) (*dto.CommentInfo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if _, err := s.ownedComment(ctx, actorID, commentID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	owner, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	info := toCommentInfo(updated, owner)
	return &info, nil
}

// Delete 删除评论，仅作者本人
func (s *CommentService) Delete(ctx context.Context, actorID, commentID string) error {
	if _, err := s.ownedComment(ctx, actorID, commentID); err != nil {
		return err
	}
	return notFound(s.comments.Delete(ctx, commentID), ErrCommentNotFound)
}
