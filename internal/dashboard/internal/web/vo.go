package web

import (
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
)

type Stats struct {
	JobsPosted           int64 `json:"jobsPosted"`
	ApplicationsCount    int64 `json:"applicationsCount"`
	ApplicationsReceived int64 `json:"applicationsReceived"`
	// 没出现过的状态不会有对应的 key
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
}

type JobList struct {
	Jobs []Job `json:"jobs"`
}

type Job struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	Applications int64  `json:"applications"`
	Poster       Poster `json:"poster"`
	Ctime        int64  `json:"ctime"`
}

type Poster struct {
	Id       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func newStats(s domain.Stats) Stats {
	byStatus := s.ApplicationsByStatus
	if byStatus == nil {
		byStatus = map[string]int64{}
	}
	return Stats{
		JobsPosted:           s.JobsPosted,
		ApplicationsCount:    s.ApplicationsCount,
		ApplicationsReceived: s.ApplicationsReceived,
		ApplicationsByStatus: byStatus,
	}
}

func newJob(j job.Job, poster user.User, applications int64) Job {
	return Job{
		Id:           j.Id,
		Title:        j.Title,
		Description:  j.Description,
		Company:      j.Company,
		Location:     j.Location,
		Type:         string(j.Type),
		Salary:       j.Salary,
		Applications: applications,
		Poster: Poster{
			Id:       poster.Id,
			Nickname: poster.Nickname,
			Avatar:   poster.Avatar,
		},
		Ctime: j.Ctime.UnixMilli(),
	}
}
