package service

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// validID 只接受标准 36 位 UUID 文本
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func toUserBrief(u *model.User) dto.UserBrief {
	return dto.UserBrief{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

func toOwnerBrief(u *model.User) *dto.OwnerBrief {
	return &dto.OwnerBrief{ID: u.ID, FullName: u.FullName, Username: u.Username, Avatar: u.Avatar}
}

func indexUsers(users []model.User) map[string]*model.User {
	m := make(map[string]*model.User, len(users))
	for i := range users {
		m[users[i].ID] = &users[i]
	}
	return m
}

// orderedUserBriefs 按 orderedIDs 的顺序输出，找不到的用户直接跳过
func orderedUserBriefs(users []model.User, orderedIDs []string) []dto.UserBrief {
	byID := indexUsers(users)
	out := make([]dto.UserBrief, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if u, ok := byID[id]; ok {
			out = append(out, toUserBrief(u))
		}
	}
	return out
}

func toUserInfo(u *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
	}
}

func toVideoInfo(v *model.Video, owner *model.User) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if owner != nil {
		info.Owner = toOwnerBrief(owner)
	}
	return info
}

func toPlaylistInfo(p *model.Playlist) dto.PlaylistInfo {
	videos := make([]dto.PlaylistVideo, 0, len(p.Videos))
	for _, e := range p.Videos {
		videos = append(videos, dto.PlaylistVideo{
			VideoID:   e.VideoID,
			VideoFile: e.VideoFile,
			Title:     e.Title,
			Channel:   e.Channel,
		})
	}
	return dto.PlaylistInfo{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
