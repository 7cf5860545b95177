package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// FindBooksParams defines parameters for FindBooks.
type FindBooksParams struct {
	Author *string `form:"author,omitempty" json:"author,omitempty"`
}

// GetOverdueLoansParams defines parameters for GetOverdueLoans.
type GetOverdueLoansParams struct {
	Today *string `form:"today,omitempty" json:"today,omitempty"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/books)
	FindBooks(ctx echo.Context, params FindBooksParams) error
	// (POST /api/v1/books)
	AddBook(ctx echo.Context) error
	// (GET /api/v1/books/{isbn}/availability)
	GetBookAvailability(ctx echo.Context, isbn string) error
	// (GET /api/v1/members)
	ListMembers(ctx echo.Context) error
	// (POST /api/v1/members)
	AddMember(ctx echo.Context) error
	// (GET /api/v1/members/{memberId}/loans)
	GetMemberLoans(ctx echo.Context, memberID string) error
	// (GET /api/v1/loans)
	ListLoans(ctx echo.Context) error
	// (POST /api/v1/loans)
	LoanBook(ctx echo.Context) error
	// (POST /api/v1/loans/return)
	ReturnBook(ctx echo.Context) error
	// (GET /api/v1/loans/overdue)
	GetOverdueLoans(ctx echo.Context, params GetOverdueLoansParams) error
	// (GET /api/v1/loans/{loanId})
	GetLoan(ctx echo.Context, loanID string) error
	// (GET /api/v1/summary)
	GetSummary(ctx echo.Context) error
	// (DELETE /api/v1/library)
	ResetLibrary(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) FindBooks(ctx echo.Context) error {
	var params FindBooksParams

	err := runtime.BindQueryParameter("form", true, false, "author", ctx.QueryParams(), &params.Author)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter author: %s", err))
	}

	return w.Handler.FindBooks(ctx, params)
}

func (w *ServerInterfaceWrapper) AddBook(ctx echo.Context) error {
	return w.Handler.AddBook(ctx)
}

func (w *ServerInterfaceWrapper) GetBookAvailability(ctx echo.Context) error {
	var isbn string

	err := runtime.BindStyledParameterWithOptions("simple", "isbn", ctx.Param("isbn"), &isbn,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter isbn: %s", err))
	}

	return w.Handler.GetBookAvailability(ctx, isbn)
}

func (w *ServerInterfaceWrapper) ListMembers(ctx echo.Context) error {
	return w.Handler.ListMembers(ctx)
}

func (w *ServerInterfaceWrapper) AddMember(ctx echo.Context) error {
	return w.Handler.AddMember(ctx)
}

func (w *ServerInterfaceWrapper) GetMemberLoans(ctx echo.Context) error {
	var memberID string

	err := runtime.BindStyledParameterWithOptions("simple", "memberId", ctx.Param("memberId"), &memberID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter memberId: %s", err))
	}

	return w.Handler.GetMemberLoans(ctx, memberID)
}

func (w *ServerInterfaceWrapper) ListLoans(ctx echo.Context) error {
	return w.Handler.ListLoans(ctx)
}

func (w *ServerInterfaceWrapper) LoanBook(ctx echo.Context) error {
	return w.Handler.LoanBook(ctx)
}

func (w *ServerInterfaceWrapper) ReturnBook(ctx echo.Context) error {
	return w.Handler.ReturnBook(ctx)
}

func (w *ServerInterfaceWrapper) GetOverdueLoans(ctx echo.Context) error {
	var params GetOverdueLoansParams

	err := runtime.BindQueryParameter("form", true, false, "today", ctx.QueryParams(), &params.Today)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter today: %s", err))
	}

	return w.Handler.GetOverdueLoans(ctx, params)
}

func (w *ServerInterfaceWrapper) GetLoan(ctx echo.Context) error {
	var loanID string

	err := runtime.BindStyledParameterWithOptions("simple", "loanId", ctx.Param("loanId"), &loanID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter loanId: %s", err))
	}

	return w.Handler.GetLoan(ctx, loanID)
}

func (w *ServerInterfaceWrapper) GetSummary(ctx echo.Context) error {
	return w.Handler.GetSummary(ctx)
}

func (w *ServerInterfaceWrapper) ResetLibrary(ctx echo.Context) error {
	return w.Handler.ResetLibrary(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/books", wrapper.FindBooks)
	router.POST("/api/v1/books", wrapper.AddBook)
	router.GET("/api/v1/books/:isbn/availability", wrapper.GetBookAvailability)
	router.GET("/api/v1/members", wrapper.ListMembers)
	router.POST("/api/v1/members", wrapper.AddMember)
	router.GET("/api/v1/members/:memberId/loans", wrapper.GetMemberLoans)
	router.GET("/api/v1/loans", wrapper.ListLoans)
	router.POST("/api/v1/loans", wrapper.LoanBook)
	router.POST("/api/v1/loans/return", wrapper.ReturnBook)
	router.GET("/api/v1/loans/overdue", wrapper.GetOverdueLoans)
	router.GET("/api/v1/loans/:loanId", wrapper.GetLoan)
	router.GET("/api/v1/summary", wrapper.GetSummary)
	router.DELETE("/api/v1/library", wrapper.ResetLibrary)
}
