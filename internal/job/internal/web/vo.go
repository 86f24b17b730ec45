package web

import (
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/user"
)

type SaveJobReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary"`
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
}

func (r SaveJobReq) toDomain() domain.Job {
	return domain.Job{
		Title:       r.Title,
		Description: r.Description,
		Company:     r.Company,
		Location:    r.Location,
		Type:        domain.JobType(r.Type),
		Salary:      r.Salary,
	}
}

func newJob(j domain.Job, u user.User) Job {
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
			Id:       u.Id,
			Nickname: u.Nickname,
			Email:    u.Email,
			Avatar:   u.Avatar,
		},
	}
}
