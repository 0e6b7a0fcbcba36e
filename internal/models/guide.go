package models

import "time"

// Guide is a curated gear-guide page for one class specialization
type Guide struct {
	ID        string    `json:"id"`
	Class     string    `json:"class"`
	Spec      string    `json:"spec"`
	Role      Role      `json:"role"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// GuideSeed is the on-disk seed format for a guide
type GuideSeed struct {
	Class string `json:"class"`
	Spec  string `json:"spec"`
	Role  Role   `json:"role"`
	URL   string `json:"url"`
}
