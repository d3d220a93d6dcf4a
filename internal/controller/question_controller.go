package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/service"
	"trivia_room_backend/internal/util"
)

// QuestionController 处理题目的增删改查
type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
	}
}

// AppendQuestion godoc
// @Summary 追加题目
// @Description 在房间题目列表末尾追加一道题，位置自动取最大位置加一
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Param   body body service.QuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.Response "题目校验失败"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "房间不存在"
// @Failure 409 {object} util.Response "房间已结束"
// @Router /api/host/rooms/{id}/questions [post]
func (c *QuestionController) AppendQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.AppendQuestion(claims.UserID, util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// UpsertQuestionAtPosition godoc
// @Summary 指定位置写入题目
// @Description 该位置已有题目时原位替换，否则插入新题
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Param   position path int true "题目位置，从1开始"
// @Param   body body service.QuestionRequest true "题目内容"
// @Success 200 {object} util.Response{data=model.Question} "替换成功"
// @Success 201 {object} util.Response{data=model.Question} "插入成功"
// @Failure 400 {object} util.Response "题目校验失败"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/host/rooms/{id}/questions/{position} [put]
func (c *QuestionController) UpsertQuestionAtPosition(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		util.BadRequest(ctx, "无效的题目位置")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, created, err := c.QuestionService.UpsertAtPosition(claims.UserID, util.MustParseUint(ctx.Param("id")), position, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	if created {
		util.Created(ctx, question)
		return
	}
	util.Success(ctx, question)
}

// UpdateQuestion godoc
// @Summary 按ID更新题目
// @Description 主持人更新题目内容，整题覆盖
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Param   body body service.QuestionRequest true "题目内容"
// @Success 200 {object} util.Response{data=model.Question} "成功"
// @Failure 400 {object} util.Response "题目校验失败"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/host/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.UpdateQuestion(claims.UserID, util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Description 删除题目并回收已发放的积分，位置保留空洞
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/host/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuestionService.DeleteQuestion(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// ListHostQuestions godoc
// @Summary 题目列表（主持人）
// @Description 主持人按位置升序查看房间全部题目，含正确答案
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=[]model.Question} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/host/rooms/{id}/questions [get]
func (c *QuestionController) ListHostQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuestionService.ListQuestionsForHost(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// ListRoomQuestions godoc
// @Summary 题目列表（玩家）
// @Description 玩家查看房间题目（不含正确答案），房间未开始前不可见
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=[]service.PlayerQuestion} "成功"
// @Failure 403 {object} util.Response "不是房间成员"
// @Failure 409 {object} util.Response "房间未开始"
// @Router /api/rooms/{id}/questions [get]
func (c *QuestionController) ListRoomQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuestionService.ListQuestionsForPlayer(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// GetCurrentQuestion godoc
// @Summary 当前题目
// @Description 返回房间当前进行中的题目（玩家视图）
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=service.PlayerQuestion} "成功"
// @Failure 404 {object} util.Response "当前没有进行中的题目"
// @Failure 409 {object} util.Response "房间未开始"
// @Router /api/rooms/{id}/questions/current [get]
func (c *QuestionController) GetCurrentQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	question, err := c.QuestionService.CurrentQuestion(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}
