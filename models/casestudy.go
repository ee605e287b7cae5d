package models

import "time"

// CaseStudy is a portfolio entry describing a delivered engagement.
type CaseStudy struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Client       string    `json:"client"`
	Industry     string    `json:"industry"`
	Timeline     string    `json:"timeline"`
	TeamSize     string    `json:"teamSize"`
	Challenge    string    `json:"challenge"`
	Solution     string    `json:"solution"`
	HeroImage    string    `json:"heroImage"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	ServiceID    string    `json:"serviceId,omitempty"`
	Technologies []string  `json:"technologies"`
	Results      []string  `json:"results"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateCaseStudyRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	Client       string   `json:"client" binding:"required"`
	Industry     string   `json:"industry" binding:"required"`
	Timeline     string   `json:"timeline" binding:"required"`
	TeamSize     string   `json:"teamSize" binding:"required"`
	Challenge    string   `json:"challenge" binding:"required"`
	Solution     string   `json:"solution" binding:"required"`
	HeroImage    string   `json:"heroImage" binding:"required,url"`
	LiveURL      string   `json:"liveUrl" binding:"omitempty,url"`
	ServiceID    string   `json:"serviceId"`
	Technologies []string `json:"technologies"`
	Results      []string `json:"results"`
}

type UpdateCaseStudyRequest struct {
	Title        *string   `json:"title"`
	Slug         *string   `json:"slug"`
	Client       *string   `json:"client"`
	Industry     *string   `json:"industry"`
	Timeline     *string   `json:"timeline"`
	TeamSize     *string   `json:"teamSize"`
	Challenge    *string   `json:"challenge"`
	Solution     *string   `json:"solution"`
	HeroImage    *string   `json:"heroImage" binding:"omitempty,url"`
	LiveURL      *string   `json:"liveUrl" binding:"omitempty,url"`
	ServiceID    *string   `json:"serviceId"`
	Technologies *[]string `json:"technologies"`
	Results      *[]string `json:"results"`
}
