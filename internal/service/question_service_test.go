package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/util"
)

func intPtr(i int) *int { return &i }

func validQuestionReq() *QuestionRequest {
	return &QuestionRequest{
		Prompt:       "Which keyword starts a goroutine?",
		Options:      []string{"go", "run", "async", "spawn"},
		CorrectIndex: intPtr(0),
		Points:       100,
	}
}

func TestAppendQuestion(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	q1, err := env.questions.AppendQuestion(host.ID, room.ID, validQuestionReq())
	require.NoError(t, err)
	q2, err := env.questions.AppendQuestion(host.ID, room.ID, validQuestionReq())
	require.NoError(t, err)
	q3, err := env.questions.AppendQuestion(host.ID, room.ID, validQuestionReq())
	require.NoError(t, err)

	assert.Equal(t, 1, q1.Position)
	assert.Equal(t, 2, q2.Position)
	assert.Equal(t, 3, q3.Position)

	var options []string
	require.NoError(t, json.Unmarshal(q1.Options, &options))
	assert.Equal(t, []string{"go", "run", "async", "spawn"}, options)
}

func TestAppendQuestion_DefaultPoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	req := validQuestionReq()
	req.Points = 0
	question, err := env.questions.AppendQuestion(host.ID, room.ID, req)
	require.NoError(t, err)
	assert.Equal(t, env.cfg.Room.DefaultQuestionPoints, question.Points)
}

func TestAppendQuestion_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	cases := []struct {
		name   string
		mutate func(*QuestionRequest)
	}{
		{"empty prompt", func(r *QuestionRequest) { r.Prompt = "   " }},
		{"single option", func(r *QuestionRequest) { r.Options = []string{"only"}; r.CorrectIndex = intPtr(0) }},
		{"too many options", func(r *QuestionRequest) {
			r.Options = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
		}},
		{"blank option", func(r *QuestionRequest) { r.Options = []string{"go", " "} }},
		{"missing correct index", func(r *QuestionRequest) { r.CorrectIndex = nil }},
		{"negative correct index", func(r *QuestionRequest) { r.CorrectIndex = intPtr(-1) }},
		{"correct index past options", func(r *QuestionRequest) { r.CorrectIndex = intPtr(4) }},
		{"negative points", func(r *QuestionRequest) { r.Points = -5 }},
		{"negative time limit", func(r *QuestionRequest) { r.TimeLimitSeconds = -1 }},
		{"media url without valid kind", func(r *QuestionRequest) { r.MediaURL = "http://x/a.png"; r.MediaKind = "gif" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validQuestionReq()
			tc.mutate(req)
			_, err := env.questions.AppendQuestion(host.ID, room.ID, req)
			assert.ErrorIs(t, err, util.ErrInvalidQuestion)
		})
	}
}

func TestAppendQuestion_Authorization(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	stranger := createUser(t, env.db, "stranger")

	room := createRoom(t, env.db, host.ID, model.RoomLobby)
	_, err := env.questions.AppendQuestion(stranger.ID, room.ID, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// Ended rooms are read-only
	ended := createRoom(t, env.db, host.ID, model.RoomEnded)
	_, err = env.questions.AppendQuestion(host.ID, ended.ID, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrRoomEnded)

	_, err = env.questions.AppendQuestion(host.ID, 9999, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrRoomNotFound)
}

func TestUpsertAtPosition(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	inserted, created, err := env.questions.UpsertAtPosition(host.ID, room.ID, 5, validQuestionReq())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, inserted.Position)

	// Writing the same position again replaces the question in place
	replacement := validQuestionReq()
	replacement.Prompt = "What does gofmt do?"
	replacement.CorrectIndex = intPtr(1)
	replaced, created, err := env.questions.UpsertAtPosition(host.ID, room.ID, 5, replacement)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, inserted.ID, replaced.ID)
	assert.Equal(t, "What does gofmt do?", replaced.Prompt)
	assert.Equal(t, 1, replaced.CorrectIndex)

	var count int64
	env.db.Model(&model.Question{}).Where("room_id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertAtPosition_RejectsInvalidPosition(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)

	_, _, err := env.questions.UpsertAtPosition(host.ID, room.ID, 0, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrInvalidQuestion)

	_, _, err = env.questions.UpsertAtPosition(host.ID, room.ID, -3, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrInvalidQuestion)
}

func TestUpdateQuestion(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	stranger := createUser(t, env.db, "stranger")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)
	question := createQuestion(t, env.db, room.ID, 1, 100, 0)

	req := validQuestionReq()
	req.Prompt = "updated prompt"
	req.Points = 250
	updated, err := env.questions.UpdateQuestion(host.ID, question.ID, req)
	require.NoError(t, err)
	assert.Equal(t, question.ID, updated.ID)
	assert.Equal(t, "updated prompt", updated.Prompt)
	assert.Equal(t, 250, updated.Points)
	assert.Equal(t, 1, updated.Position, "updating must not move the question")

	_, err = env.questions.UpdateQuestion(stranger.ID, question.ID, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.questions.UpdateQuestion(host.ID, 9999, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestWriteQuestionAfterRoomEnded(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	question := createQuestion(t, env.db, room.ID, 1, 100, 0)

	_, err := env.rooms.EndRoom(host.ID, room.ID)
	require.NoError(t, err)

	_, err = env.questions.UpdateQuestion(host.ID, question.ID, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrRoomEnded)

	err = env.questions.DeleteQuestion(host.ID, question.ID)
	assert.ErrorIs(t, err, util.ErrRoomEnded)

	_, _, err = env.questions.UpsertAtPosition(host.ID, room.ID, 2, validQuestionReq())
	assert.ErrorIs(t, err, util.ErrRoomEnded)
}

func TestDeleteQuestion_ReclaimsAwardedPoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	alice := createUser(t, env.db, "alice")
	bob := createUser(t, env.db, "bob")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	target := createQuestion(t, env.db, room.ID, 1, 100, 1)
	keeper := createQuestion(t, env.db, room.ID, 2, 50, 0)
	pa := addPlayer(t, env.db, room.ID, alice.ID, "alice")
	pb := addPlayer(t, env.db, room.ID, bob.ID, "bob")

	_, err := env.answers.RecordAnswer(alice.ID, target.ID, 1) // +100
	require.NoError(t, err)
	_, err = env.answers.RecordAnswer(alice.ID, keeper.ID, 0) // +50
	require.NoError(t, err)
	_, err = env.answers.RecordAnswer(bob.ID, target.ID, 0) // miss
	require.NoError(t, err)

	require.NoError(t, env.questions.DeleteQuestion(host.ID, target.ID))

	// Only the deleted question's points are clawed back
	assert.Equal(t, 50, playerScore(t, env.db, pa.ID))
	assert.Equal(t, 0, playerScore(t, env.db, pb.ID))

	var answers int64
	env.db.Unscoped().Model(&model.Answer{}).Where("question_id = ?", target.ID).Count(&answers)
	assert.Equal(t, int64(0), answers)

	var questions int64
	env.db.Unscoped().Model(&model.Question{}).Where("id = ?", target.ID).Count(&questions)
	assert.Equal(t, int64(0), questions)
}

func TestDeleteQuestion_LeavesPositionGap(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)
	createQuestion(t, env.db, room.ID, 1, 100, 0)
	middle := createQuestion(t, env.db, room.ID, 2, 100, 0)
	createQuestion(t, env.db, room.ID, 3, 100, 0)

	require.NoError(t, env.questions.DeleteQuestion(host.ID, middle.ID))

	remaining, err := env.questions.ListQuestionsForHost(host.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, remaining[0].Position)
	assert.Equal(t, 3, remaining[1].Position, "surviving questions keep their positions")

	// Appending continues past the highest position, not into the gap
	appended, err := env.questions.AppendQuestion(host.ID, room.ID, validQuestionReq())
	require.NoError(t, err)
	assert.Equal(t, 4, appended.Position)
}

func TestListQuestionsForHost(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	stranger := createUser(t, env.db, "stranger")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)
	createQuestion(t, env.db, room.ID, 2, 100, 1)
	createQuestion(t, env.db, room.ID, 1, 100, 3)

	questions, err := env.questions.ListQuestionsForHost(host.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Position, "host list is ordered by position")
	assert.Equal(t, 3, questions[1].CorrectIndex, "the host view includes the answer key")

	_, err = env.questions.ListQuestionsForHost(stranger.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestListQuestionsForPlayer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	member := createUser(t, env.db, "alice")
	stranger := createUser(t, env.db, "stranger")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	createQuestion(t, env.db, room.ID, 1, 100, 2)
	addPlayer(t, env.db, room.ID, member.ID, "alice")

	questions, err := env.questions.ListQuestionsForPlayer(member.ID, room.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].Position)

	// The player view must not leak the answer key
	payload, err := json.Marshal(questions)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correctIndex")

	_, err = env.questions.ListQuestionsForPlayer(stranger.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrNotRoomMember)
}

func TestListQuestionsForPlayer_LobbyHidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	member := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLobby)
	createQuestion(t, env.db, room.ID, 1, 100, 0)
	addPlayer(t, env.db, room.ID, member.ID, "alice")

	_, err := env.questions.ListQuestionsForPlayer(member.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrRoomNotStarted)
}

func TestCurrentQuestion(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	member := createUser(t, env.db, "alice")
	room := createRoom(t, env.db, host.ID, model.RoomLive)
	createQuestion(t, env.db, room.ID, 1, 100, 0)
	second := createQuestion(t, env.db, room.ID, 2, 100, 0)
	addPlayer(t, env.db, room.ID, member.ID, "alice")

	// Before the first advance there is no current question
	_, err := env.questions.CurrentQuestion(member.ID, room.ID)
	assert.ErrorIs(t, err, util.ErrNoCurrentQuestion)

	pos := 2
	_, err = env.rooms.AdvanceRoom(host.ID, room.ID, &AdvanceRequest{Position: &pos})
	require.NoError(t, err)

	current, err := env.questions.CurrentQuestion(member.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, 2, current.Position)
}

func TestCurrentQuestion_Guards(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	host := createUser(t, env.db, "host")
	member := createUser(t, env.db, "alice")
	stranger := createUser(t, env.db, "stranger")

	lobby := createRoom(t, env.db, host.ID, model.RoomLobby)
	createQuestion(t, env.db, lobby.ID, 1, 100, 0)
	addPlayer(t, env.db, lobby.ID, member.ID, "alice")
	_, err := env.questions.CurrentQuestion(member.ID, lobby.ID)
	assert.ErrorIs(t, err, util.ErrRoomNotStarted)

	live := createRoom(t, env.db, host.ID, model.RoomLive)
	_, err = env.questions.CurrentQuestion(stranger.ID, live.ID)
	assert.ErrorIs(t, err, util.ErrNotRoomMember)
}
