package domain

import "time"

type Project struct {
	ID        string
	Slug      string
	Name      string
	CreatedAt time.Time
}
