package controller

import (
	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/service"
	"trivia_room_backend/internal/util"
)

// MediaController 处理题目素材上传
type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{
		MediaService: mediaService,
	}
}

// UploadQuestionMedia godoc
// @Summary 上传题目素材
// @Description 上传图片、音频或视频素材，音视频附带时长与分辨率信息。
// @Description 返回的 URL 用于题目的 mediaUrl 字段
// @Tags 素材
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "素材文件"
// @Success 200 {object} util.Response{data=service.MediaUploadResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 413 {object} util.Response "文件过大"
// @Failure 415 {object} util.Response "不支持的文件类型"
// @Router /api/host/media/upload [post]
func (c *MediaController) UploadQuestionMedia(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "未找到上传文件")
		return
	}

	result, err := c.MediaService.UploadQuestionMedia(ctx.Request.Context(), file)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
