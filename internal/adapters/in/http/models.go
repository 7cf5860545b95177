package http

import (
	"github.com/google/uuid"
)

// Request and response bodies of the API, mirroring the schemas in openapi.yaml.

type NewBook struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	AuthorBirthYear int     `json:"authorBirthYear"`
	Year            int     `json:"year"`
	Price           float64 `json:"price"`
	ISBN            string  `json:"isbn"`
}

type Book struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	AuthorBirthYear int     `json:"authorBirthYear"`
	Year            int     `json:"year"`
	Price           float64 `json:"price"`
	ISBN            string  `json:"isbn"`
	Available       bool    `json:"available"`
}

type Availability struct {
	ISBN       string `json:"isbn"`
	Catalogued bool   `json:"catalogued"`
	Available  bool   `json:"available"`
}

type NewMember struct {
	Name       string `json:"name"`
	MemberID   string `json:"memberId"`
	YearJoined int    `json:"yearJoined"`
}

type Member struct {
	Name       string `json:"name"`
	MemberID   string `json:"memberId"`
	YearJoined int    `json:"yearJoined"`
}

type MemberRef struct {
	MemberID string `json:"memberId"`
}

type NewLoan struct {
	ISBN      string `json:"isbn"`
	MemberID  string `json:"memberId"`
	StartDate string `json:"startDate"`
	DueDate   string `json:"dueDate"`
}

type ReturnRequest struct {
	ISBN     string `json:"isbn"`
	MemberID string `json:"memberId"`
}

type Loan struct {
	ID        uuid.UUID `json:"id"`
	ISBN      string    `json:"isbn"`
	MemberID  string    `json:"memberId"`
	StartDate string    `json:"startDate"`
	DueDate   string    `json:"dueDate"`
	Status    string    `json:"status"`
}

type Summary struct {
	Books             int `json:"books"`
	Members           int `json:"members"`
	Loans             int `json:"loans"`
	ActiveLoans       int `json:"activeLoans"`
	LiveBookInstances int `json:"liveBookInstances"`
}

type Error struct {
	Code    int    `json:"code"`
	Outcome string `json:"outcome,omitempty"`
	Message string `json:"message"`
}
