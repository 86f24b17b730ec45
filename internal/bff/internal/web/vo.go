package web

import (
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
)

type ListJobsReq struct {
	Type     string `json:"type"`
	Location string `json:"location"`
	Keyword  string `json:"keyword"`
}

type JobIdReq struct {
	Jid int64 `json:"jid"`
}

type Poster struct {
	Id       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type Job struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary,omitempty"`
	Ctime       int64  `json:"ctime"`
	Poster      Poster `json:"poster"`
	// Applications 收到的投递数
	Applications int64 `json:"applications"`
	HasApplied   bool  `json:"hasApplied"`
}

type JobList struct {
	Jobs []Job `json:"jobs"`
}

func newJob(j job.Job, poster user.User, applications int64, hasApplied bool) Job {
	return Job{
		Id:          j.Id,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		Type:        string(j.Type),
		Salary:      j.Salary,
		Ctime:       j.Ctime.UnixMilli(),
		Poster: Poster{
			Id:       poster.Id,
			Nickname: poster.Nickname,
			Email:    poster.Email,
			Avatar:   poster.Avatar,
		},
		Applications: applications,
		HasApplied:   hasApplied,
	}
}
