package controller

import (
	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/service"
	"trivia_room_backend/internal/util"
)

// PlayerController 处理玩家加入、离开与排行榜
type PlayerController struct {
	PlayerService *service.PlayerService
}

func NewPlayerController(playerService *service.PlayerService) *PlayerController {
	return &PlayerController{
		PlayerService: playerService,
	}
}

// JoinRoom godoc
// @Summary 加入房间
// @Description 凭邀请码和昵称加入房间，重复加入返回已有的玩家记录
// @Tags 玩家
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.JoinRequest true "邀请码与昵称"
// @Success 200 {object} util.Response{data=service.JoinResult} "成功"
// @Failure 404 {object} util.Response "房间不存在"
// @Failure 409 {object} util.Response "房间已结束、已满或昵称被占用"
// @Router /api/rooms/join [post]
func (c *PlayerController) JoinRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.JoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PlayerService.JoinRoom(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// LeaveRoom godoc
// @Summary 离开房间
// @Description 玩家退出房间，其全部作答与积分一并删除
// @Tags 玩家
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "不是房间成员"
// @Router /api/rooms/{id}/leave [post]
func (c *PlayerController) LeaveRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PlayerService.LeaveRoom(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// KickPlayer godoc
// @Summary 踢出玩家
// @Description 主持人将玩家移出房间，效果与玩家自行离开一致
// @Tags 主持人
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Param   playerId path int true "玩家ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "玩家不存在"
// @Router /api/host/rooms/{id}/players/{playerId}/kick [post]
func (c *PlayerController) KickPlayer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.PlayerService.KickPlayer(
		claims.UserID,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("playerId")),
	)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// Leaderboard godoc
// @Summary 房间排行榜
// @Description 积分降序、加入时间升序的玩家排名，走 Redis 缓存
// @Tags 玩家
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "房间ID"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "成功"
// @Failure 403 {object} util.Response "不是房间成员"
// @Failure 404 {object} util.Response "房间不存在"
// @Router /api/rooms/{id}/leaderboard [get]
func (c *PlayerController) Leaderboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.PlayerService.Leaderboard(ctx.Request.Context(), claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
