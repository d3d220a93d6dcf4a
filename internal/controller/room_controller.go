package controller

import (
	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/service"
	"trivia_room_backend/internal/util"
)

// RoomController 处理房间的创建、生命周期与各类视图
type RoomController struct {
	RoomService *service.RoomService
}

func NewRoomController(roomService *service.RoomService) *RoomController {
	return &RoomController{
		RoomService: roomService,
	}
}

// CreateRoom godoc
// @Summary 创建房间
// @Description 创建新的问答房间，邀请码自动生成，创建者成为主持人
// @Tags 主持人
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.RoomCreateRequest true "房间信息"
// @Success 201 {object} util.Response{data=model.Room} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/host/rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RoomCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.RoomService.CreateRoom(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, room)
}

// ListMyRooms godoc
// @Summary 我主持的房间
// @Description 分页返回当前用户主持的房间，附带玩家数与题目数
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/host/rooms [get]
func (c *RoomController) ListMyRooms(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePagination(ctx, 10)

	rooms, total, err := c.RoomService.ListMyRooms(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  rooms,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetHostRoom godoc
// @Summary 房间详情（主持人）
// @Description 主持人查看房间完整详情，含全部题目与玩家
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=service.RoomDetail} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "房间不存在"
// @Router /api/host/rooms/{id} [get]
func (c *RoomController) GetHostRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.RoomService.GetRoomForHost(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// UpdateRoom godoc
// @Summary 更新房间
// @Description 主持人修改房间标题、描述或人数上限，仅限 lobby 状态
// @Tags 主持人
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Param   body body service.RoomUpdateRequest true "待更新字段"
// @Success 200 {object} util.Response{data=model.Room} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "房间不存在"
// @Failure 409 {object} util.Response "房间已开始"
// @Router /api/host/rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RoomUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.RoomService.UpdateRoom(claims.UserID, util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, room)
}

// DeleteRoom godoc
// @Summary 删除房间
// @Description 主持人或管理员删除房间，题目、玩家与作答一并删除
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "房间不存在"
// @Router /api/host/rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.RoomService.DeleteRoom(claims.UserID, claims.Role, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// OpenRoom godoc
// @Summary 开始房间
// @Description lobby → live，要求房间至少有一道题目
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=model.Room} "成功"
// @Failure 409 {object} util.Response "状态不允许或没有题目"
// @Router /api/host/rooms/{id}/open [post]
func (c *RoomController) OpenRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	room, err := c.RoomService.OpenRoom(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, room)
}

// EndRoom godoc
// @Summary 结束房间
// @Description live → ended，结束后房间只读
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=model.Room} "成功"
// @Failure 409 {object} util.Response "状态不允许"
// @Router /api/host/rooms/{id}/end [post]
func (c *RoomController) EndRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	room, err := c.RoomService.EndRoom(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, room)
}

// AdvanceRoom godoc
// @Summary 推进当前题目
// @Description 指定 position 跳到该题，不指定则跳到下一道存在的题目
// @Tags 主持人
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Param   body body service.AdvanceRequest false "目标位置"
// @Success 200 {object} util.Response{data=model.Room} "成功"
// @Failure 404 {object} util.Response "位置不存在"
// @Failure 409 {object} util.Response "房间未开始或已结束"
// @Router /api/host/rooms/{id}/advance [post]
func (c *RoomController) AdvanceRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	// 请求体可为空，空体等价于推进到下一题
	var req service.AdvanceRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	room, err := c.RoomService.AdvanceRoom(claims.UserID, util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, room)
}

// GetRoom godoc
// @Summary 房间详情（成员）
// @Description 房间玩家或主持人查看房间与玩家列表，不含题目内容
// @Tags 房间
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=service.RoomView} "成功"
// @Failure 403 {object} util.Response "不是房间成员"
// @Failure 404 {object} util.Response "房间不存在"
// @Router /api/rooms/{id} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.RoomService.GetRoomForMember(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// ListJoinedRooms godoc
// @Summary 我加入的房间
// @Description 分页返回当前用户以玩家身份加入的房间
// @Tags 房间
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/rooms/joined [get]
func (c *RoomController) ListJoinedRooms(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePagination(ctx, 10)

	rooms, total, err := c.RoomService.ListJoinedRooms(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  rooms,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Preview godoc
// @Summary 房间预览
// @Description 按邀请码公开查看房间概况（标题、状态、人数）
// @Tags 房间
// @Produce  json
// @Param   code path string true "房间邀请码"
// @Success 200 {object} util.Response{data=service.RoomPreview} "成功"
// @Failure 404 {object} util.Response "房间不存在"
// @Router /api/rooms/preview/{code} [get]
func (c *RoomController) Preview(ctx *gin.Context) {
	preview, err := c.RoomService.PreviewByCode(ctx.Param("code"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, preview)
}

// ListAllRooms godoc
// @Summary 获取房间列表
// @Description 管理端分页查看全部房间，可按状态筛选
// @Tags 房间管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(10)
// @Param   status query string false "状态筛选 lobby/live/ended"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/admin/rooms [get]
func (c *RoomController) ListAllRooms(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx, 10)

	rooms, total, err := c.RoomService.ListAllRooms(page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  rooms,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
