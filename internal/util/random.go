package util

import "math/rand/v2"

// 房间邀请码字符集，去掉了易混淆的 I、O、0、1
const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRoomCode 生成指定长度的房间邀请码，唯一性由调用方校验
func GenerateRoomCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
	}
	return string(code)
}

const randomChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString 生成随机文件名后缀等非安全场景使用的随机串
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = randomChars[rand.IntN(len(randomChars))]
	}
	return string(b)
}
