package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"vidtube-go/internal/api/dto"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 内存实现的存储，语义与 gorm 仓库一致：查不到返回 ErrRecordNotFound，唯一键冲突返回 ErrDuplicatedKey

var (
	clockBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clockTick atomic.Int64
)

// tick 单调递增的时间，保证按创建时间排序的结果稳定
func tick() time.Time {
	return clockBase.Add(time.Duration(clockTick.Add(1)) * time.Second)
}

func stamp(b *model.Base) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := tick()
	b.CreatedAt, b.UpdatedAt = now, now
}

// ---- users ----

type fakeUsers struct {
	mu        sync.Mutex
	rows      []model.User
	createErr error
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// remove 模拟账号被删除后留下的悬空关系
func (f *fakeUsers) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return
		}
	}
}

func (f *fakeUsers) GetByIDs(_ context.Context, ids []string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []model.User{}
	for _, u := range f.rows {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].Username == username {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.rows {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&user.Base)
	f.rows = append(f.rows, *user)
	return nil
}

func (f *fakeUsers) Update(_ context.Context, id string, updates map[string]interface{}) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		u := &f.rows[i]
		if u.ID != id {
			continue
		}
		for k, v := range updates {
			switch k {
			case "full_name":
				u.FullName = v.(string)
			case "avatar":
				u.Avatar = v.(string)
			case "cover_image":
				u.CoverImage = v.(string)
			}
		}
		u.UpdatedAt = tick()
		out := *u
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ---- videos ----

type fakeVideos struct {
	mu        sync.Mutex
	rows      []model.Video
	createErr error
}

func (f *fakeVideos) GetByID(_ context.Context, id string) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			v := f.rows[i]
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideos) GetByIDs(_ context.Context, ids []string) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []model.Video{}
	for _, v := range f.rows {
		if want[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideos) Create(_ context.Context, video *model.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	stamp(&video.Base)
	f.rows = append(f.rows, *video)
	return nil
}

func (f *fakeVideos) Update(_ context.Context, id string, updates map[string]interface{}) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		v := &f.rows[i]
		if v.ID != id {
			continue
		}
		for k, val := range updates {
			switch k {
			case "title":
				v.Title = val.(string)
			case "description":
				v.Description = val.(string)
			case "thumbnail":
				v.Thumbnail = val.(string)
			case "is_published":
				v.IsPublished = val.(bool)
			}
		}
		v.UpdatedAt = tick()
		out := *v
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideos) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeVideos) IncrementViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Views++
		}
	}
	return nil
}

func sortVideos(videos []model.Video, order repository.VideoOrder) {
	var less func(a, b *model.Video) bool
	switch order.Column {
	case "created_at":
		less = func(a, b *model.Video) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "views":
		less = func(a, b *model.Video) bool { return a.Views < b.Views }
	case "title":
		less = func(a, b *model.Video) bool { return a.Title < b.Title }
	case "duration_seconds":
		less = func(a, b *model.Video) bool { return a.DurationSeconds < b.DurationSeconds }
	default:
		return
	}
	sort.SliceStable(videos, func(i, j int) bool {
		if order.Desc {
			return less(&videos[j], &videos[i])
		}
		return less(&videos[i], &videos[j])
	})
}

func (f *fakeVideos) ListByOwner(_ context.Context, ownerID string, publishedOnly bool, order repository.VideoOrder) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Video{}
	for _, v := range f.rows {
		if v.OwnerID == ownerID && (!publishedOnly || v.IsPublished) {
			out = append(out, v)
		}
	}
	sortVideos(out, order)
	return out, nil
}

func (f *fakeVideos) ListPublished(_ context.Context, filter repository.VideoFilter) ([]model.Video, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := strings.ToLower(filter.Query)
	matched := []model.Video{}
	for _, v := range f.rows {
		if !v.IsPublished {
			continue
		}
		if filter.OwnerID != "" && v.OwnerID != filter.OwnerID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.Title), q) && !strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		matched = append(matched, v)
	}
	sortVideos(matched, filter.Order)

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []model.Video{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

// ---- comments ----

type fakeComments struct {
	mu   sync.Mutex
	rows []model.Comment
}

func (f *fakeComments) GetByID(_ context.Context, id string) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeComments) Create(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&comment.Base)
	f.rows = append(f.rows, *comment)
	return nil
}

func (f *fakeComments) UpdateContent(_ context.Context, id, content string) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Content = content
			f.rows[i].UpdatedAt = tick()
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeComments) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeComments) ListByVideo(_ context.Context, videoID string, offset, limit int) ([]model.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []model.Comment{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].VideoID == videoID {
			matched = append(matched, f.rows[i])
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.Comment{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// ---- tweets ----

type fakeTweets struct {
	mu   sync.Mutex
	rows []model.Tweet
}

func (f *fakeTweets) GetByID(_ context.Context, id string) (*model.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			t := f.rows[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTweets) Create(_ context.Context, tweet *model.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&tweet.Base)
	f.rows = append(f.rows, *tweet)
	return nil
}

func (f *fakeTweets) UpdateContent(_ context.Context, id, content string) (*model.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Content = content
			t := f.rows[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTweets) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTweets) ListByOwner(_ context.Context, ownerID string) ([]model.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Tweet{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].OwnerID == ownerID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

// ---- likes ----

type fakeLikes struct {
	mu   sync.Mutex
	rows []model.Like

	// raceInsert 模拟另一个请求抢先插入：Create 先写入一条相同的记录，再返回唯一键冲突
	raceInsert bool
	// raceDelete 模拟另一个请求抢先删除：Delete 删除记录但报告 0 行受影响
	raceDelete bool
}

func (f *fakeLikes) Find(_ context.Context, likedBy string, target model.LikeTarget) (*model.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].LikedBy == likedBy && f.rows[i].Target == target {
			l := f.rows[i]
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLikes) Create(_ context.Context, like *model.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceInsert {
		f.raceInsert = false
		f.rows = append(f.rows, model.Like{ID: uuid.NewString(), LikedBy: like.LikedBy, Target: like.Target, CreatedAt: tick()})
	}
	for _, l := range f.rows {
		if l.LikedBy == like.LikedBy && l.Target == like.Target {
			return gorm.ErrDuplicatedKey
		}
	}
	if like.ID == "" {
		like.ID = uuid.NewString()
	}
	like.CreatedAt = tick()
	f.rows = append(f.rows, *like)
	return nil
}

func (f *fakeLikes) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			if f.raceDelete {
				f.raceDelete = false
				return false, nil
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikes) ListByOwner(_ context.Context, likedBy string, kind model.LikeKind) ([]model.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Like{}
	for _, l := range f.rows {
		if l.LikedBy == likedBy && l.Target.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLikes) CountByTargets(_ context.Context, kind model.LikeKind, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for _, l := range f.rows {
		if l.Target.Kind == kind && want[l.Target.ID] {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikes) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// ---- subscriptions ----

type fakeSubs struct {
	mu         sync.Mutex
	rows       []model.Subscription
	raceInsert bool
}

func (f *fakeSubs) Find(_ context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].SubscriberID == subscriberID && f.rows[i].ChannelID == channelID {
			s := f.rows[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubs) Create(_ context.Context, sub *model.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceInsert {
		f.raceInsert = false
		f.rows = append(f.rows, model.Subscription{ID: uuid.NewString(), SubscriberID: sub.SubscriberID, ChannelID: sub.ChannelID, CreatedAt: tick()})
	}
	for _, s := range f.rows {
		if s.SubscriberID == sub.SubscriberID && s.ChannelID == sub.ChannelID {
			return gorm.ErrDuplicatedKey
		}
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.CreatedAt = tick()
	f.rows = append(f.rows, *sub)
	return nil
}

func (f *fakeSubs) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubs) CountByChannel(_ context.Context, channelID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.rows {
		if s.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubs) ListByChannel(_ context.Context, channelID string) ([]model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Subscription{}
	for _, s := range f.rows {
		if s.ChannelID == channelID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) ListBySubscriber(_ context.Context, subscriberID string) ([]model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Subscription{}
	for _, s := range f.rows {
		if s.SubscriberID == subscriberID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ---- playlists ----

type fakePlaylists struct {
	mu   sync.Mutex
	rows []model.Playlist
	seq  int64
}

func clonePlaylist(p *model.Playlist) *model.Playlist {
	out := *p
	out.Videos = append([]model.PlaylistEntry{}, p.Videos...)
	return &out
}

func (f *fakePlaylists) find(id string) *model.Playlist {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i]
		}
	}
	return nil
}

func (f *fakePlaylists) GetByID(_ context.Context, id string) (*model.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p := f.find(id); p != nil {
		return clonePlaylist(p), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlaylists) Create(_ context.Context, playlist *model.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&playlist.Base)
	playlist.Videos = []model.PlaylistEntry{}
	f.rows = append(f.rows, *clonePlaylist(playlist))
	return nil
}

func (f *fakePlaylists) Update(_ context.Context, id string, updates map[string]interface{}) (*model.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.find(id)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		p.Description = v.(string)
	}
	p.UpdatedAt = tick()
	return clonePlaylist(p), nil
}

func (f *fakePlaylists) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePlaylists) ListByOwner(_ context.Context, ownerID string) ([]model.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Playlist{}
	for i := range f.rows {
		if f.rows[i].OwnerID == ownerID {
			out = append(out, *clonePlaylist(&f.rows[i]))
		}
	}
	return out, nil
}

func (f *fakePlaylists) AddEntry(_ context.Context, entry *model.PlaylistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.find(entry.PlaylistID)
	if p == nil {
		return gorm.ErrRecordNotFound
	}
	if p.HasVideo(entry.VideoID) {
		return gorm.ErrDuplicatedKey
	}
	f.seq++
	entry.Seq = f.seq
	p.Videos = append(p.Videos, *entry)
	p.UpdatedAt = tick()
	return nil
}

func (f *fakePlaylists) RemoveEntries(_ context.Context, playlistID, videoID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.find(playlistID)
	if p == nil {
		return 0, nil
	}
	kept := p.Videos[:0]
	var removed int64
	for _, e := range p.Videos {
		if e.VideoID == videoID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	p.Videos = kept
	return removed, nil
}

// ---- collaborators ----

type fakeMedia struct {
	mu       sync.Mutex
	failOn   map[string]error
	uploaded []string
	deleted  []string
}

func (f *fakeMedia) Upload(_ context.Context, localPath string) (*media.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[localPath]; err != nil {
		return nil, err
	}
	id := uuid.NewString()
	f.uploaded = append(f.uploaded, id)
	return &media.Asset{URL: "http://media.test/vidtube/" + id, PublicID: id}, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakeProber struct {
	duration media.Duration
	err      error
}

func (f fakeProber) Probe(context.Context, string) (media.Duration, error) {
	return f.duration, f.err
}

type fakeEvents struct {
	mu     sync.Mutex
	events []*infraKafka.VideoEvent
}

func (f *fakeEvents) PublishVideoEvent(_ context.Context, ev *infraKafka.VideoEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeEvents) types() []infraKafka.VideoEventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]infraKafka.VideoEventType, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.Type)
	}
	return out
}

type memStats struct {
	mu          sync.Mutex
	entries     map[string]dto.ChannelStats
	invalidated []string
}

func newMemStats() *memStats {
	return &memStats{entries: map[string]dto.ChannelStats{}}
}

func (m *memStats) Get(_ context.Context, id string) (*dto.ChannelStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	return &s, true
}

func (m *memStats) Set(_ context.Context, id string, stats *dto.ChannelStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = *stats
}

func (m *memStats) Invalidate(_ context.Context, ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.entries, id)
		m.invalidated = append(m.invalidated, id)
	}
}

type fakeSearcher struct {
	ids   []string
	total int64
	err   error
}

func (f *fakeSearcher) SearchVideos(context.Context, string, int, int) ([]string, int64, error) {
	return f.ids, f.total, f.err
}

type fakeIndexer struct {
	docs []infraES.VideoDoc
}

func (f *fakeIndexer) BulkIndexVideos(_ context.Context, docs []infraES.VideoDoc) (int, int, error) {
	f.docs = append(f.docs, docs...)
	return len(docs), 0, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(userID string) (string, error) { return "token-" + userID, nil }
func (fakeTokens) TTL() time.Duration                     { return time.Hour }

// ---- fixture ----

// world 一组共享的内存存储，供各服务测试组合使用
type world struct {
	users     *fakeUsers
	videos    *fakeVideos
	comments  *fakeComments
	tweets    *fakeTweets
	likes     *fakeLikes
	subs      *fakeSubs
	playlists *fakePlaylists
	media     *fakeMedia
	events    *fakeEvents
	stats     *memStats
}

func newWorld() *world {
	return &world{
		users:     &fakeUsers{},
		videos:    &fakeVideos{},
		comments:  &fakeComments{},
		tweets:    &fakeTweets{},
		likes:     &fakeLikes{},
		subs:      &fakeSubs{},
		playlists: &fakePlaylists{},
		media:     &fakeMedia{failOn: map[string]error{}},
		events:    &fakeEvents{},
		stats:     newMemStats(),
	}
}

func (w *world) addUser(username string) *model.User {
	u := &model.User{Username: username, FullName: strings.ToUpper(username), Avatar: "http://media.test/vidtube/avatar-" + username}
	if err := w.users.Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

func (w *world) addVideo(ownerID, title string, published bool, views int64) *model.Video {
	v := &model.Video{
		OwnerID:     ownerID,
		Title:       title,
		Description: title + " description",
		VideoFile:   "http://media.test/vidtube/" + uuid.NewString(),
		Thumbnail:   "http://media.test/vidtube/" + uuid.NewString(),
		Duration:    "1:00",
		Views:       views,
		IsPublished: published,
	}
	if err := w.videos.Create(context.Background(), v); err != nil {
		panic(err)
	}
	return v
}

func (w *world) likeService() *LikeService {
	return NewLikeService(w.likes, w.videos, w.comments, w.tweets, w.stats)
}

func (w *world) subscriptionService() *SubscriptionService {
	return NewSubscriptionService(w.subs, w.users, w.stats)
}

func (w *world) dashboardService() *DashboardService {
	return NewDashboardService(w.users, w.videos, w.likes, w.subs, w.stats)
}

func (w *world) channelService() *ChannelService {
	return NewChannelService(w.users, w.videos, w.playlists, w.subs)
}

func (w *world) videoService(prober DurationProber) *VideoService {
	return NewVideoService(w.videos, w.users, w.media, prober, w.events, w.stats)
}

func (w *world) commentService() *CommentService {
	return NewCommentService(w.comments, w.videos, w.users)
}

func (w *world) tweetService() *TweetService {
	return NewTweetService(w.tweets, w.users)
}

func (w *world) playlistService() *PlaylistService {
	return NewPlaylistService(w.playlists, w.videos, w.users)
}
