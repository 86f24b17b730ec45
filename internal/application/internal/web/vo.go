package web

import (
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
)

type ApplyReq struct {
	Jid int64 `json:"jid"`
}

type Poster struct {
	Id       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type Job struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Salary   string `json:"salary,omitempty"`
	Poster   Poster `json:"poster"`
}

type Application struct {
	Id     int64  `json:"id"`
	JobId  int64  `json:"jobId"`
	Status string `json:"status"`
	Ctime  int64  `json:"ctime"`
	Job    Job    `json:"job"`
}

type ApplicationList struct {
	Applications []Application `json:"applications"`
}

func newApplication(app domain.Application, j job.Job, poster user.User) Application {
	return Application{
		Id:     app.Id,
		JobId:  app.JobId,
		Status: string(app.Status),
		Ctime:  app.Ctime.UnixMilli(),
		Job: Job{
			Id:       j.Id,
			Title:    j.Title,
			Company:  j.Company,
			Location: j.Location,
			Type:     string(j.Type),
			Salary:   j.Salary,
			Poster: Poster{
				Id:       poster.Id,
				Nickname: poster.Nickname,
				Email:    poster.Email,
				Avatar:   poster.Avatar,
			},
		},
	}
}
