package view

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/dtroode/userdirectory/internal/logger"
)

// NotFoundMessage is shown when no user matches the requested id.
const NotFoundMessage = "User not found"

// DetailPage is the rendered detail of one user, or the not-found notice.
type DetailPage struct {
	Found    bool
	ID       int64
	Name     string
	Email    string
	Message  string
	BackLink string
}

// WriteHTML writes the page markup to w.
func (p DetailPage) WriteHTML(w io.Writer) error {
	return render(w, "detail", p)
}

// DetailView shows a single user looked up by a path segment.
type DetailView struct {
	users  UserSource
	logger *logger.Logger
}

// NewDetail creates a DetailView.
func NewDetail(users UserSource, logger *logger.Logger) *DetailView {
	return &DetailView{
		users:  users,
		logger: logger,
	}
}

// Render looks up the user named by rawID. Any string is accepted; values
// that do not parse or do not match a user give the not-found page.
func (v *DetailView) Render(rawID string) DetailPage {
	notFound := DetailPage{Message: NotFoundMessage, BackLink: ListPath}

	id, ok := ParseID(rawID)
	if !ok {
		v.logger.Debug("detail view: unparseable id", "raw_id", rawID)
		return notFound
	}

	u, ok := v.users.Snapshot().Find(id)
	if !ok {
		return notFound
	}

	return DetailPage{
		Found:    true,
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		BackLink: ListPath,
	}
}

// ParseID reads a decimal integer from the start of raw. Leading whitespace
// and a sign are allowed and anything after the digits is ignored, so
// " 12abc" gives 12. It fails when no digits lead the string or the value
// overflows int64.
func ParseID(raw string) (int64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(sign+s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
