package media

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"vidtube-go/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// FormatDuration 把秒数格式化为 H:MM:SS（超过一小时）或 M:SS
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Duration 视频时长。Seconds 用于排序，Display 用于展示
type Duration struct {
	Seconds int64
	Display string
}

// NewDuration 由 ffprobe 给出的秒数构造时长，不足一秒的部分舍去
func NewDuration(seconds float64) Duration {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	return Duration{Seconds: int64(seconds), Display: FormatDuration(seconds)}
}

// ProbeFunc 调用 ffprobe，返回其 JSON 输出
type ProbeFunc func(fileName string) (string, error)

// DurationProber 通过 ffprobe 读取本地视频文件的时长
type DurationProber struct {
	probe ProbeFunc
}

func NewDurationProber() *DurationProber {
	return &DurationProber{probe: func(fileName string) (string, error) {
		return ffmpeg.Probe(fileName)
	}}
}

// NewDurationProberWith 使用自定义的探测函数，测试时替换 ffprobe
func NewDurationProberWith(probe ProbeFunc) *DurationProber {
	return &DurationProber{probe: probe}
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Duration  string `json:"duration"`
	} `json:"streams"`
}

// Probe 读取时长
func (p *DurationProber) Probe(ctx context.Context, localPath string) (Duration, error) {
	if err := ctx.Err(); err != nil {
		return Duration{}, err
	}

	out, err := p.probe(localPath)
	if err != nil {
		return Duration{}, errors.Wrapf(err, "ffprobe %s", localPath)
	}

	var parsed probeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return Duration{}, errors.Wrap(err, "decode ffprobe output")
	}

	raw := parsed.Format.Duration
	if raw == "" {
		for _, s := range parsed.Streams {
			if s.CodecType == "video" && s.Duration != "" {
				raw = s.Duration
				break
			}
		}
	}
	if raw == "" {
		return Duration{}, errors.Errorf("no duration in ffprobe output for %s", localPath)
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Duration{}, errors.Wrapf(err, "parse duration %q", raw)
	}

	logger.Debug("Video duration probed", zap.String("path", localPath), zap.Float64("seconds", seconds))
	return NewDuration(seconds), nil
}
