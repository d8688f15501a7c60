package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{9.7, "0:09"},
		{65, "1:05"},
		{599, "9:59"},
		{3600, "1:00:00"},
		{3725.4, "1:02:05"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "abc", PublicIDFromURL("http://127.0.0.1:9000/vidtube-media/abc.mp4"))
	assert.Equal(t, "9f1c", PublicIDFromURL("https://cdn.example.com/a/b/9f1c"))
	assert.Equal(t, "thumb", PublicIDFromURL("thumb.v2.jpg"))
	assert.Equal(t, "", PublicIDFromURL(""))
}

func TestDurationProber_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("format duration", func(t *testing.T) {
		p := NewDurationProberWith(func(string) (string, error) {
			return `{"format":{"duration":"125.300000"}}`, nil
		})
		got, err := p.Probe(ctx, "video.mp4")
		require.NoError(t, err)
		assert.Equal(t, Duration{Seconds: 125, Display: "2:05"}, got)
	})

	t.Run("falls back to video stream", func(t *testing.T) {
		p := NewDurationProberWith(func(string) (string, error) {
			return `{"format":{},"streams":[{"codec_type":"audio","duration":"1"},{"codec_type":"video","duration":"3661"}]}`, nil
		})
		got, err := p.Probe(ctx, "video.mkv")
		require.NoError(t, err)
		assert.Equal(t, Duration{Seconds: 3661, Display: "1:01:01"}, got)
	})

	t.Run("ffprobe failure", func(t *testing.T) {
		p := NewDurationProberWith(func(string) (string, error) {
			return "", errors.New("exit status 1")
		})
		_, err := p.Probe(ctx, "broken.mp4")
		require.Error(t, err)
	})

	t.Run("no duration", func(t *testing.T) {
		p := NewDurationProberWith(func(string) (string, error) { return `{"format":{}}`, nil })
		_, err := p.Probe(ctx, "x.mp4")
		require.Error(t, err)
	})
}
