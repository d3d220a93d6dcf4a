package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/util"
)

func TestJoinRoom(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	// Codes are matched case-insensitively with surrounding whitespace ignored
	result, err := env.players.JoinRoom(user.ID, &JoinRequest{
		Code:     "  " + room.Code + "  ",
		Nickname: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, result.Room.ID)
	assert.Equal(t, user.ID, result.Player.UserID)
	assert.Equal(t, "alice", result.Player.Nickname)
	assert.Equal(t, 0, result.Player.Score)

	bob := createUser(t, env.db, "bob")
	_, err = env.players.JoinRoom(bob.ID, &JoinRequest{Code: strings.ToLower(room.Code), Nickname: "bob"})
	assert.NoError(t, err)
}

func TestJoinRoom_RejoinReturnsExistingPlayer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)

	first, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	require.NoError(t, err)

	second, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	require.NoError(t, err)
	assert.Equal(t, first.Player.ID, second.Player.ID)

	var count int64
	env.db.Model(&model.Player{}).Where("room_id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(1), count, "rejoining must not create a second player row")
}

func TestJoinRoom_RejoinCanChangeNickname(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	other := createUser(t, env.db, "bob")
	room := createRoom(t, env.db, host.ID, model.RoomLive)

	joined, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	require.NoError(t, err)
	_, err = env.players.JoinRoom(other.ID, &JoinRequest{Code: room.Code, Nickname: "bob"})
	require.NoError(t, err)

	renamed, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "alice2"})
	require.NoError(t, err)
	assert.Equal(t, joined.Player.ID, renamed.Player.ID)
	assert.Equal(t, "alice2", renamed.Player.Nickname)

	// Renaming onto another player's nickname is rejected
	_, err = env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "bob"})
	assert.ErrorIs(t, err, util.ErrNicknameTaken)
}

func TestJoinRoom_NicknameTaken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	alice := createUser(t, env.db, "alice")
	bob := createUser(t, env.db, "bob")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	_, err := env.players.JoinRoom(alice.ID, &JoinRequest{Code: room.Code, Nickname: "champ"})
	require.NoError(t, err)

	_, err = env.players.JoinRoom(bob.ID, &JoinRequest{Code: room.Code, Nickname: "champ"})
	assert.ErrorIs(t, err, util.ErrNicknameTaken)
}

func TestJoinRoom_BlankNickname(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	_, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "   "})
	assert.ErrorIs(t, err, util.ErrInvalidNickname)
}

func TestJoinRoom_RoomFull(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room, err := env.rooms.CreateRoom(host.ID, &RoomCreateRequest{Title: "tiny", MaxPlayers: 1})
	require.NoError(t, err)

	alice := createUser(t, env.db, "alice")
	_, err = env.players.JoinRoom(alice.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	require.NoError(t, err)

	bob := createUser(t, env.db, "bob")
	_, err = env.players.JoinRoom(bob.ID, &JoinRequest{Code: room.Code, Nickname: "bob"})
	assert.ErrorIs(t, err, util.ErrRoomFull)

	// A full room still accepts rejoins from existing players
	_, err = env.players.JoinRoom(alice.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	assert.NoError(t, err)
}

func TestJoinRoom_EndedRoom(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomEnded)

	_, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: room.Code, Nickname: "alice"})
	assert.ErrorIs(t, err, util.ErrRoomEnded)
}

func TestJoinRoom_UnknownCode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := createUser(t, env.db, "alice")

	_, err := env.players.JoinRoom(user.ID, &JoinRequest{Code: "NOSUCH", Nickname: "alice"})
	assert.ErrorIs(t, err, util.ErrRoomNotFound)
}

func TestJoinRoom_HostJoinsOwnRoom(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	result, err := env.players.JoinRoom(host.ID, &JoinRequest{Code: room.Code, Nickname: "quizmaster"})
	require.NoError(t, err)
	assert.Equal(t, host.ID, result.Player.UserID)
}

func TestLeaveRoom(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	question := createQuestion(t, env.db, room.ID, 1, 100, 0)
	player := addPlayer(t, env.db, room.ID, user.ID, "alice")

	_, err := env.answers.RecordAnswer(user.ID, question.ID, 0)
	require.NoError(t, err)

	require.NoError(t, env.players.LeaveRoom(user.ID, room.ID))

	// The player and their answers are gone for good, unique indexes freed
	var players, answers int64
	env.db.Unscoped().Model(&model.Player{}).Where("id = ?", player.ID).Count(&players)
	env.db.Unscoped().Model(&model.Answer{}).Where("player_id = ?", player.ID).Count(&answers)
	assert.Equal(t, int64(0), players)
	assert.Equal(t, int64(0), answers)

	err = env.players.LeaveRoom(user.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrNotRoomMember)
}

func TestLeaveRoom_FreesNickname(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	alice := createUser(t, env.db, "alice")
	bob := createUser(t, env.db, "bob")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	_, err := env.players.JoinRoom(alice.ID, &JoinRequest{Code: room.Code, Nickname: "champ"})
	require.NoError(t, err)
	require.NoError(t, env.players.LeaveRoom(alice.ID, room.ID))

	_, err = env.players.JoinRoom(bob.ID, &JoinRequest{Code: room.Code, Nickname: "champ"})
	assert.NoError(t, err, "nickname must be reusable after its owner leaves")
}

func TestKickPlayer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	player := addPlayer(t, env.db, room.ID, user.ID, "alice")

	require.NoError(t, env.players.KickPlayer(host.ID, room.ID, player.ID))

	var count int64
	env.db.Unscoped().Model(&model.Player{}).Where("id = ?", player.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestKickPlayer_Authorization(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	stranger := createUser(t, env.db, "stranger")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	player := addPlayer(t, env.db, room.ID, user.ID, "alice")

	err := env.players.KickPlayer(stranger.ID, room.ID, player.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// A player id from a different room must not resolve through this room
	other := createRoom(t, env.db, host.ID, model.RoomLive)
	outsider := addPlayer(t, env.db, other.ID, stranger.ID, "stranger")
	err = env.players.KickPlayer(host.ID, room.ID, outsider.ID)
	assert.ErrorIs(t, err, util.ErrPlayerNotFound)

	err = env.players.KickPlayer(host.ID, 9999, player.ID)
	assert.ErrorIs(t, err, util.ErrRoomNotFound)
}

func TestLeaderboard_Ordering(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLive)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"alice", "bob", "carol"}
	scores := []int{100, 300, 100}
	for i, name := range names {
		u := createUser(t, env.db, name)
		p := addPlayer(t, env.db, room.ID, u.ID, name)
		require.NoError(t, env.db.Model(&model.Player{}).Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"score":      scores[i],
				"created_at": base.Add(time.Duration(i) * time.Minute),
			}).Error)
	}

	entries, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Highest score first; equal scores rank by join time
	assert.Equal(t, []string{"bob", "alice", "carol"}, []string{entries[0].Nickname, entries[1].Nickname, entries[2].Nickname})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	assert.Equal(t, 300, entries[0].Score)
}

func TestLeaderboard_MemberGate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	host := createUser(t, env.db, "host")
	member := createUser(t, env.db, "alice")
	stranger := createUser(t, env.db, "stranger")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	addPlayer(t, env.db, room.ID, member.ID, "alice")

	_, err := env.players.Leaderboard(ctx, member.ID, room.ID)
	assert.NoError(t, err)

	_, err = env.players.Leaderboard(ctx, host.ID, room.ID)
	assert.NoError(t, err, "the host can read the leaderboard without a player row")

	_, err = env.players.Leaderboard(ctx, stranger.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrNotRoomMember)

	_, err = env.players.Leaderboard(ctx, member.ID, 9999)
	assert.ErrorIs(t, err, util.ErrRoomNotFound)
}

func TestLeaderboard_ServesFromCache(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	host := createUser(t, env.db, "host")
	user := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	player := addPlayer(t, env.db, room.ID, user.ID, "alice")

	first, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 0, first[0].Score)
	assert.True(t, env.mr.Exists(fmt.Sprintf("room:leaderboard:%d", room.ID)), "first read must populate the cache")

	// A write that bypasses the services leaves the cache stale
	require.NoError(t, env.db.Model(&model.Player{}).Where("id = ?", player.ID).Update("score", 500).Error)

	stale, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stale[0].Score, "cached entries are served until invalidated")

	require.NoError(t, env.cache.Invalidate(ctx, room.ID))
	fresh, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, fresh[0].Score)
}

func TestLeaderboard_ReflectsRecordedAnswers(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	host := createUser(t, env.db, "host")
	alice := createUser(t, env.db, "alice")
	bob := createUser(t, env.db, "bob")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	question := createQuestion(t, env.db, room.ID, 1, 200, 1)
	addPlayer(t, env.db, room.ID, alice.ID, "alice")
	addPlayer(t, env.db, room.ID, bob.ID, "bob")

	// Warm the cache, then score through the answer flow
	_, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)

	_, err = env.answers.RecordAnswer(bob.ID, question.ID, 1)
	require.NoError(t, err)

	entries, err := env.players.Leaderboard(ctx, host.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Nickname, "answer writes invalidate the cached ordering")
	assert.Equal(t, 200, entries[0].Score)
}
