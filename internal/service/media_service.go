package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/util"
	"trivia_room_backend/pkg/logger"
)

// MediaService 处理题目素材与头像上传：校验、探测、落存储
type MediaService struct {
	Storage *StorageService
	Cfg     *config.Config
}

func NewMediaService(storage *StorageService, cfg *config.Config) *MediaService {
	return &MediaService{Storage: storage, Cfg: cfg}
}

type MediaUploadResult struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
	// Info 音视频的探测结果，图片为空
	Info *util.MediaInfo `json:"info,omitempty"`
}

// kindForExtension 按扩展名判定素材类型及其 MIME 前缀
func kindForExtension(ext string) (kind, mimePrefix string, ok bool) {
	switch {
	case util.ExtensionAllowed(ext, util.AllowedImageExtensions):
		return "image", util.MimeImage, true
	case util.ExtensionAllowed(ext, util.AllowedAudioExtensions):
		return "audio", util.MimeAudio, true
	case util.ExtensionAllowed(ext, util.AllowedVideoExtensions):
		return "video", util.MimeVideo, true
	default:
		return "", "", false
	}
}

func (s *MediaService) maxUploadBytes() int64 {
	return int64(s.Cfg.Media.MaxUploadMB) << 20
}

// UploadQuestionMedia 上传题目素材。音视频先落临时文件探测时长和
// 分辨率再入存储，图片直接流式上传
func (s *MediaService) UploadQuestionMedia(ctx context.Context, file *multipart.FileHeader) (*MediaUploadResult, error) {
	if file.Size > s.maxUploadBytes() {
		return nil, util.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	kind, mimePrefix, ok := kindForExtension(ext)
	if !ok {
		return nil, util.ErrUnsupportedMedia
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{mimePrefix})
	if err != nil {
		return nil, util.ErrUnsupportedMedia
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("questions/%s/%s%s", time.Now().Format("200601"), uuid.New().String(), ext)

	if kind == "image" {
		url, err := s.Storage.Upload(ctx, objectName, src, file.Size, mimeType)
		if err != nil {
			return nil, err
		}
		return &MediaUploadResult{URL: url, Kind: kind}, nil
	}

	// 音视频素材：ffmpeg 探测需要本地文件
	tmp, err := os.CreateTemp("", "media-*"+ext)
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	info, err := util.ProbeMedia(tmpPath)
	if err != nil {
		// 探测失败不阻断上传，客户端缺省渲染
		logger.Log.Warn("media probe failed", zap.String("file", file.Filename), zap.Error(err))
		info = nil
	}

	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}

	return &MediaUploadResult{URL: url, Kind: kind, Info: info}, nil
}

// UploadAvatar 上传用户头像，仅接受图片
func (s *MediaService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxUploadBytes() {
		return "", util.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !util.ExtensionAllowed(ext, util.AllowedImageExtensions) {
		return "", util.ErrUnsupportedMedia
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil {
		return "", util.ErrUnsupportedMedia
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d-%s%s", userID, util.GenerateRandomString(8), ext)
	return s.Storage.Upload(ctx, objectName, src, file.Size, mimeType)
}
