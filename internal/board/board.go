// Package board assembles one store, one page and the views on it.
package board

import (
	"log/slog"

	"github.com/idilsaglam/projboard/internal/model"
	"github.com/idilsaglam/projboard/internal/store"
	"github.com/idilsaglam/projboard/internal/surface"
	"github.com/idilsaglam/projboard/internal/view"
)

// HostID is the page section every top-level view attaches to.
const HostID = "app"

// Config is what a front-end provides to build a board.
type Config struct {
	Templates *surface.Library
	Alert     view.Alerter
	Log       *slog.Logger
}

// Board is a fully constructed page: the input form followed by the active
// and finished lists, all sharing one store.
type Board struct {
	Store    *store.Store
	Page     *surface.Page
	Input    *view.ProjectInput
	Active   *view.ProjectList
	Finished *view.ProjectList
}

// New builds the board. A nil Templates uses the built-in ones.
func New(cfg Config) (*Board, error) {
	if cfg.Log == nil {
		cfg.Log = slog.New(slog.DiscardHandler)
	}
	if cfg.Templates == nil {
		lib, err := surface.DefaultLibrary()
		if err != nil {
			return nil, err
		}
		cfg.Templates = lib
	}
	if cfg.Alert == nil {
		cfg.Alert = view.AlertFunc(func(msg string) {
			cfg.Log.Warn("alert", "message", msg)
		})
	}

	env := &view.Env{
		Templates: cfg.Templates,
		Page:      surface.NewPage(HostID),
		Store:     store.New(cfg.Log),
		Alert:     cfg.Alert,
		Log:       cfg.Log,
	}

	b := &Board{Store: env.Store, Page: env.Page}
	var err error
	if b.Input, err = view.NewProjectInput(env); err != nil {
		return nil, err
	}
	if b.Active, err = view.NewProjectList(env, model.Active); err != nil {
		return nil, err
	}
	if b.Finished, err = view.NewProjectList(env, model.Finished); err != nil {
		return nil, err
	}
	return b, nil
}

// Lists returns the partition views in display order.
func (b *Board) Lists() []*view.ProjectList {
	return []*view.ProjectList{b.Active, b.Finished}
}

// Fill sets the raw text of the form's fields, as typed by a user.
func (b *Board) Fill(title, description, people string) {
	el := b.Input.Element()
	el.Find(view.FieldTitle).SetFieldValue(title)
	el.Find(view.FieldDescription).SetFieldValue(description)
	el.Find(view.FieldPeople).SetFieldValue(people)
}

// Submit fires the form's submit event.
func (b *Board) Submit() error {
	return b.Page.Dispatch(view.InputID, surface.EventSubmit)
}
