package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "library/internal/adapters/in/http"
	"library/internal/adapters/out/memory"
	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"
	"library/internal/testutil/logspy"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f commandUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	lib := library.New()
	t.Cleanup(lib.Release)

	factory := memory.NewUnitOfWorkFactory(memory.NewStore(lib))
	cmdFactory := commandUoWFactory{factory: factory}
	logger := logspy.New().Logger()

	server := httpin.NewServer(
		commands.NewAddBookCommandHandler(cmdFactory),
		commands.NewAddMemberCommandHandler(cmdFactory),
		commands.NewLoanBookCommandHandler(cmdFactory, logger),
		commands.NewReturnBookCommandHandler(cmdFactory, logger),
		commands.NewResetLibraryCommandHandler(cmdFactory, logger),
		queries.NewGetBookAvailabilityQueryHandler(factory),
		queries.NewFindBooksByAuthorQueryHandler(factory),
		queries.NewGetMemberLoansQueryHandler(factory),
		queries.NewGetOverdueLoansQueryHandler(factory),
		queries.NewGetLibrarySummaryQueryHandler(factory),
		queries.NewListLoansQueryHandler(factory),
		queries.NewGetLoanQueryHandler(factory),
		queries.NewListMembersQueryHandler(factory),
		logger,
	).WithClock(func() kernel.Date { return "2025-12-01" })

	e, err := httpin.NewRouter(t.Context(), server, logger)
	require.NoError(t, err)

	seed := []struct{ path, body string }{
		{"/api/v1/books", `{"title":"Pod igoto","author":"Ivan Vazov","authorBirthYear":1850,"year":1894,"price":25.5,"isbn":"ISBN-001"}`},
		{"/api/v1/books", `{"title":"Nema zemya","author":"Ivan Vazov","authorBirthYear":1850,"year":1900,"price":18.9,"isbn":"ISBN-002"}`},
		{"/api/v1/books", `{"title":"Bay Ganyo","author":"Aleko Konstantinov","authorBirthYear":1863,"year":1895,"price":15,"isbn":"ISBN-003"}`},
		{"/api/v1/members", `{"name":"Petar Petrov","memberId":"M001","yearJoined":2023}`},
		{"/api/v1/members", `{"name":"Maria Ivanova","memberId":"M002","yearJoined":2024}`},
	}
	for _, s := range seed {
		rec := do(e, http.MethodPost, s.path, s.body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_Health(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_OpenAPIDocument(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Contains(t, doc["paths"], "/api/v1/loans")
}

func TestServer_LoanLifecycle(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-001","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.Loan](t, rec)
	assert.Equal(t, "ISBN-001", created.ISBN)
	assert.Equal(t, "ACTIVE", created.Status)
	assert.NotEqual(t, [16]byte{}, [16]byte(created.ID))

	rec = do(e, http.MethodGet, "/api/v1/books/ISBN-001/availability", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpin.Availability{ISBN: "ISBN-001", Catalogued: true, Available: false},
		decode[httpin.Availability](t, rec))

	rec = do(e, http.MethodPost, "/api/v1/loans/return", `{"isbn":"ISBN-001","memberId":"M001"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/books/ISBN-001/availability", "")
	assert.True(t, decode[httpin.Availability](t, rec).Available)

	rec = do(e, http.MethodGet, "/api/v1/members/M001/loans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	loans := decode[[]httpin.Loan](t, rec)
	require.Len(t, loans, 1)
	assert.Equal(t, created.ID, loans[0].ID)
	assert.Equal(t, "RETURNED", loans[0].Status)
}

func TestServer_ErrorMapping(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-002","memberId":"M002","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		wantStatus  int
		wantOutcome string
	}{
		{
			name:   "loan of an unknown book",
			method: http.MethodPost, path: "/api/v1/loans",
			body:       `{"isbn":"ISBN-999","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`,
			wantStatus: http.StatusNotFound, wantOutcome: "BookNotFound",
		},
		{
			name:   "loan of a book already on loan",
			method: http.MethodPost, path: "/api/v1/loans",
			body:       `{"isbn":"ISBN-002","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`,
			wantStatus: http.StatusConflict, wantOutcome: "BookUnavailable",
		},
		{
			name:   "loan to an unknown member",
			method: http.MethodPost, path: "/api/v1/loans",
			body:       `{"isbn":"ISBN-001","memberId":"M999","startDate":"2025-11-03","dueDate":"2025-11-17"}`,
			wantStatus: http.StatusNotFound, wantOutcome: "MemberNotFound",
		},
		{
			name:   "loan without dates",
			method: http.MethodPost, path: "/api/v1/loans",
			body:       `{"isbn":"ISBN-001","memberId":"M001"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "return by another member",
			method: http.MethodPost, path: "/api/v1/loans/return",
			body:       `{"isbn":"ISBN-002","memberId":"M001"}`,
			wantStatus: http.StatusNotFound, wantOutcome: "NoActiveLoan",
		},
		{
			name:   "duplicate isbn",
			method: http.MethodPost, path: "/api/v1/books",
			body:       `{"title":"Copy","author":"Somebody","isbn":"ISBN-001"}`,
			wantStatus: http.StatusConflict, wantOutcome: "DuplicateISBN",
		},
		{
			name:   "book without title",
			method: http.MethodPost, path: "/api/v1/books",
			body:       `{"isbn":"ISBN-010"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			method: http.MethodPost, path: "/api/v1/books",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "loans of an unknown member",
			method: http.MethodGet, path: "/api/v1/members/M999/loans",
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "loan id that is not a uuid",
			method: http.MethodGet, path: "/api/v1/loans/loan-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown loan id",
			method: http.MethodGet, path: "/api/v1/loans/0b7e6f7c-5b1a-4c1e-9a55-7d1f0f4a2d3e",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decode[httpin.Error](t, rec)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantOutcome, body.Outcome)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestServer_FindBooks(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/books?author=Vazov", "")
	require.Equal(t, http.StatusOK, rec.Code)
	books := decode[[]httpin.Book](t, rec)
	require.Len(t, books, 2)
	assert.Equal(t, "Pod igoto", books[0].Title)
	assert.Equal(t, "Nema zemya", books[1].Title)
	assert.InDelta(t, 25.5, books[0].Price, 0.001)

	rec = do(e, http.MethodGet, "/api/v1/books", "")
	assert.Len(t, decode[[]httpin.Book](t, rec), 3)

	rec = do(e, http.MethodGet, "/api/v1/books?author=vazov", "")
	assert.Empty(t, decode[[]httpin.Book](t, rec))
}

func TestServer_OverdueLoans(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-003","memberId":"M002","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/loans/overdue?today=2025-11-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]httpin.Loan](t, rec))

	rec = do(e, http.MethodGet, "/api/v1/loans/overdue", "")
	require.Equal(t, http.StatusOK, rec.Code)
	overdue := decode[[]httpin.Loan](t, rec)
	require.Len(t, overdue, 1, "the server clock says 2025-12-01")
	assert.Equal(t, "ISBN-003", overdue[0].ISBN)
}

func TestServer_Summary(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-001","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/summary", "")

	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[httpin.Summary](t, rec)
	assert.Equal(t, 3, summary.Books)
	assert.Equal(t, 2, summary.Members)
	assert.Equal(t, 1, summary.Loans)
	assert.Equal(t, 1, summary.ActiveLoans)
	assert.GreaterOrEqual(t, summary.LiveBookInstances, 3)
}

func TestServer_ListAndGetLoans(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-001","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[httpin.Loan](t, rec)

	rec = do(e, http.MethodPost, "/api/v1/loans/return", `{"isbn":"ISBN-001","memberId":"M001"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-003","memberId":"M002","startDate":"2025-11-05","dueDate":"2025-11-19"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decode[httpin.Loan](t, rec)

	rec = do(e, http.MethodGet, "/api/v1/loans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	loans := decode[[]httpin.Loan](t, rec)
	require.Len(t, loans, 2)
	assert.Equal(t, first.ID, loans[0].ID)
	assert.Equal(t, "RETURNED", loans[0].Status)
	assert.Equal(t, second, loans[1])

	rec = do(e, http.MethodGet, "/api/v1/loans/"+first.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, loans[0], decode[httpin.Loan](t, rec))

	rec = do(e, http.MethodGet, "/api/v1/loans/overdue?today=2025-11-18", "")
	require.Equal(t, http.StatusOK, rec.Code, "the overdue route wins over the loan id route")
	assert.Empty(t, decode[[]httpin.Loan](t, rec))
}

func TestServer_ListMembers(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/members", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []httpin.Member{
		{Name: "Petar Petrov", MemberID: "M001", YearJoined: 2023},
		{Name: "Maria Ivanova", MemberID: "M002", YearJoined: 2024},
	}, decode[[]httpin.Member](t, rec))
}

func TestServer_ResetLibrary(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"isbn":"ISBN-001","memberId":"M001","startDate":"2025-11-03","dueDate":"2025-11-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/library", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/summary", "")
	summary := decode[httpin.Summary](t, rec)
	assert.Zero(t, summary.Books)
	assert.Zero(t, summary.Members)
	assert.Zero(t, summary.Loans)

	rec = do(e, http.MethodPost, "/api/v1/books",
		`{"title":"Pod igoto","author":"Ivan Vazov","authorBirthYear":1850,"year":1894,"price":25.5,"isbn":"ISBN-001"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, "an ISBN can be catalogued again after a reset")
}

func TestServer_AddMemberWithoutID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/members", `{"name":"Anonymous","yearJoined":2025}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "UNKNOWN", decode[httpin.MemberRef](t, rec).MemberID)
}

func TestServer_UnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/nothing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[httpin.Error](t, rec).Code)
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpin.LoadOpenAPI(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/books/{isbn}/availability"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/loans/{loanId}"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/library").Delete)
	assert.Equal(t, "Library", doc.Info.Title)
}
