package model

// Player 用户在某个房间内的成员身份，每个用户在每个房间至多一条
// swagger:model Player
type Player struct {
	BaseModel
	RoomID   uint   `gorm:"index;uniqueIndex:idx_room_user;not null" json:"roomId"`
	UserID   uint   `gorm:"uniqueIndex:idx_room_user;not null" json:"userId"`
	Nickname string `gorm:"size:50;not null" json:"nickname"`
	Score    int    `gorm:"default:0" json:"score"`
}

func (Player) TableName() string {
	return "players"
}
