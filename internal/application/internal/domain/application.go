package domain

import "time"

type Status string

const (
	// StatusPending 新投递的默认状态
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Application struct {
	Id    int64
	JobId int64
	// Uid 投递人
	Uid    int64
	Status Status
	Ctime  time.Time
	Utime  time.Time
}
