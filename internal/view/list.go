package view

import (
	"context"
	"io"

	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
)

// ListItem is one row of the list page.
type ListItem struct {
	ID    int64
	Name  string
	Email string
	Link  string
}

// ListPage is the rendered list. While Loading is set Items is empty.
type ListPage struct {
	Loading bool
	Items   []ListItem
}

// WriteHTML writes the page markup to w.
func (p ListPage) WriteHTML(w io.Writer) error {
	return render(w, "list", p)
}

// ListView shows the store's users after they went through the loader.
type ListView struct {
	users  UserSource
	loader DataLoader
	logger *logger.Logger
}

// NewList creates a ListView.
func NewList(users UserSource, loader DataLoader, logger *logger.Logger) *ListView {
	return &ListView{
		users:  users,
		loader: loader,
		logger: logger,
	}
}

// Run feeds every store snapshot into the loader until ctx is done or the
// store closes the subscription.
func (v *ListView) Run(ctx context.Context) error {
	snapshots, unsubscribe := v.users.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snapshots:
			if !ok {
				v.logger.Debug("list view: store subscription closed")
				return nil
			}
			if v.loader.Load(snap) {
				v.logger.Debug("list view: reloading", "version", snap.Version)
			}
		}
	}
}

// Render builds the page from the loader's current state.
func (v *ListView) Render() ListPage {
	st := v.loader.State()
	return pageFromState(st.Loading, st.Users)
}

// Watch sends a page for the current state and for every later loader
// transition until ctx is done.
func (v *ListView) Watch(ctx context.Context, send func(ListPage) error) error {
	states, unsubscribe := v.loader.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case st, ok := <-states:
			if !ok {
				return nil
			}
			if err := send(pageFromState(st.Loading, st.Users)); err != nil {
				return err
			}
		}
	}
}

func pageFromState(loading bool, users []model.User) ListPage {
	if loading {
		return ListPage{Loading: true}
	}

	items := make([]ListItem, 0, len(users))
	for _, u := range users {
		items = append(items, ListItem{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Link:  DetailPath(u.ID),
		})
	}
	return ListPage{Items: items}
}
