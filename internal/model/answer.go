package model

// Answer 玩家对某道题的作答记录，(player_id, question_id) 上至多一条，
// 重复提交会覆盖旧选项并按差值调整玩家积分
// swagger:model Answer
type Answer struct {
	BaseModel
	PlayerID   uint `gorm:"uniqueIndex:idx_player_question;not null" json:"playerId"`
	QuestionID uint `gorm:"uniqueIndex:idx_player_question;not null" json:"questionId"`
	// RoomID 冗余存储，便于主持人按房间拉取全部作答
	RoomID      uint `gorm:"index;not null" json:"roomId"`
	ChoiceIndex int  `gorm:"not null" json:"choiceIndex"`
	Correct     bool `gorm:"default:false" json:"correct"`
	// PointsAwarded 该作答当前计入玩家总分的分值
	PointsAwarded int `gorm:"default:0" json:"pointsAwarded"`
}

func (Answer) TableName() string {
	return "answers"
}
