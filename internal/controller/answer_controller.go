package controller

import (
	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/service"
	"trivia_room_backend/internal/util"
)

// AnswerController 处理作答提交与查询
type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{
		AnswerService: answerService,
	}
}

// RecordAnswer godoc
// @Summary 提交作答
// @Description 玩家对某道题提交选项。重复提交覆盖旧选项并按差值调整积分，
// @Description 返回作答记录与玩家最新总分
// @Tags 作答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Param   body body service.RecordAnswerRequest true "所选选项下标"
// @Success 200 {object} util.Response{data=service.RecordAnswerResult} "成功"
// @Failure 400 {object} util.Response "选项越界"
// @Failure 403 {object} util.Response "不是该题所在房间的玩家"
// @Failure 404 {object} util.Response "题目不存在"
// @Failure 409 {object} util.Response "房间已结束"
// @Router /api/questions/{id}/answers [post]
func (c *AnswerController) RecordAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AnswerService.RecordAnswer(claims.UserID, util.MustParseUint(ctx.Param("id")), *req.ChoiceIndex)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ListQuestionAnswers godoc
// @Summary 某题的全部作答（主持人）
// @Description 主持人分页查看一道题的全部作答，附带玩家昵称
// @Tags 作答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/host/questions/{id}/answers [get]
func (c *AnswerController) ListQuestionAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePagination(ctx, 20)

	answers, total, err := c.AnswerService.ListAnswersForQuestion(claims.UserID, util.MustParseUint(ctx.Param("id")), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  answers,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// MyAnswers godoc
// @Summary 我的作答
// @Description 玩家查看自己在某房间内的全部作答记录
// @Tags 作答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=[]model.Answer} "成功"
// @Failure 403 {object} util.Response "不是房间成员"
// @Router /api/rooms/{id}/answers [get]
func (c *AnswerController) MyAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	answers, err := c.AnswerService.MyAnswers(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, answers)
}
