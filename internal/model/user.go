package model

type UserID = int64

type User struct {
	ID        UserID
	Name      string
	Email     string
	Bio       string
	AvatarURL string
}
