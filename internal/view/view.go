// Package view turns the user collection into list and detail pages.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dtroode/userdirectory/internal/loader"
	"github.com/dtroode/userdirectory/internal/model"
)

// ListPath is where the list page lives.
const ListPath = "/"

// DetailPath returns the path of a user's detail page.
func DetailPath(id int64) string {
	return fmt.Sprintf("/users/%d", id)
}

// UserSource is the read side of the user store.
type UserSource interface {
	Snapshot() model.Snapshot
	Subscribe() (<-chan model.Snapshot, func())
}

// DataLoader is the simulated fetch the list goes through.
type DataLoader interface {
	Load(snap model.Snapshot) bool
	State() loader.State
	Subscribe() (<-chan loader.State, func())
}

var pages = template.Must(template.New("list").Parse(
	`{{if .Loading}}<p>Loading...</p>{{else}}<div class="container"><h1>Users</h1><ul>` +
		`{{range .Items}}<li data-key="{{.ID}}"><p>{{.Name}}</p><p>{{.Email}}</p><a href="{{.Link}}">View Details</a></li>{{end}}` +
		`</ul></div>{{end}}`,
))

func init() {
	template.Must(pages.New("detail").Parse(
		`{{if .Found}}<div class="user-detail"><h1>{{.Name}}</h1><p>Email: {{.Email}}</p>` +
			`<a href="{{.BackLink}}" class="back-link">Back to User List</a></div>` +
			`{{else}}<p>{{.Message}}</p><a href="{{.BackLink}}" class="back-link">Back to User List</a>{{end}}`,
	))
}

func render(w io.Writer, name string, data any) error {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return nil
}
