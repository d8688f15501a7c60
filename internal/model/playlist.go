package model

// Playlist 播放列表
type Playlist struct {
	Base
	OwnerID     string          `gorm:"size:36;not null;index:idx_playlists_owner_id;comment:所属用户ID" json:"ownerId"`
	Name        string          `gorm:"size:200;not null;comment:名称" json:"name"`
	Description string          `gorm:"type:text;not null;comment:描述" json:"description"`
	Videos      []PlaylistEntry `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"videos"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// HasVideo 判断列表中是否已包含该视频
func (p *Playlist) HasVideo(videoID string) bool {
	for i := range p.Videos {
		if p.Videos[i].VideoID == videoID {
			return true
		}
	}
	return false
}

// PlaylistEntry 播放列表条目，保存加入时视频信息的快照，之后不随视频变化
type PlaylistEntry struct {
	Seq        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	PlaylistID string `gorm:"size:36;not null;uniqueIndex:uq_playlist_video,priority:1" json:"-"`
	VideoID    string `gorm:"size:36;not null;uniqueIndex:uq_playlist_video,priority:2" json:"videoId"`
	VideoFile  string `gorm:"size:500;not null" json:"videoFile"`
	Title      string `gorm:"size:200;not null" json:"title"`
	Channel    string `gorm:"size:64;not null;comment:视频作者用户名" json:"channel"`
}

func (PlaylistEntry) TableName() string {
	return "playlist_entries"
}
