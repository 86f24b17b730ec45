package domain

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
	JobTypeRemote     JobType = "remote"
)

type Job struct {
	Id          int64
	Title       string
	Description string
	Company     string
	Location    string
	Type        JobType
	// Salary 展示用的字符串，可以为空
	Salary string
	// Uid 发布人
	Uid   int64
	Ctime time.Time
	Utime time.Time
}

// Filter 各维度是 AND 关系，零值表示该维度不限
type Filter struct {
	// Type 精确匹配
	Type JobType
	// Location 子串匹配
	Location string
	// Keyword 在标题、描述、公司名之间 OR
	Keyword string
}
