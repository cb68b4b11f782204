package view

import (
	"context"
	stderrors "errors"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/common/logger"
	"cnpj-lookup/internal/common/metrics"
	"cnpj-lookup/internal/lookup"
)

// HandlerFunc moves the screen from one state to the next. It returns an
// error only for a malformed action; lookup failures are part of the
// returned state.
type HandlerFunc func(ctx context.Context, s State, a Action) (Outcome, error)

// Dispatcher routes actions to their handlers.
type Dispatcher struct {
	handlers map[ActionKind]HandlerFunc
	looker   lookup.Looker
	logger   logger.Logger
}

func NewDispatcher(looker lookup.Looker, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[ActionKind]HandlerFunc),
		looker:   looker,
		logger:   log,
	}

	d.Register(ActionSubmitQuery, d.submitQuery)
	d.Register(ActionFilterRole, filterRole)
	d.Register(ActionSelectTab, selectTab)
	d.Register(ActionToggleEdit, toggleEdit)
	d.Register(ActionSaveForm, saveForm)

	return d
}

// Register installs or replaces the handler for kind.
func (d *Dispatcher) Register(kind ActionKind, h HandlerFunc) {
	d.handlers[kind] = h
}

func (d *Dispatcher) Dispatch(ctx context.Context, s State, a Action) (Outcome, error) {
	h, ok := d.handlers[a.Kind]
	if !ok {
		return Outcome{State: s}, errors.NewInvalidActionError(string(a.Kind))
	}
	metrics.SessionActions.WithLabelValues(string(a.Kind)).Inc()
	return h(ctx, s, a)
}

func (d *Dispatcher) submitQuery(ctx context.Context, s State, a Action) (Outcome, error) {
	result, err := d.looker.Lookup(ctx, a.Query)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidFormat) {
			return Outcome{State: s, Feedback: Feedback{InputInvalid: true}}, nil
		}

		next := s
		next.ErrorFlag = true
		next.VisibleTab = ""
		next.ActiveTab = ""
		next.Editing = false
		if stderrors.Is(err, errors.ErrNotFound) {
			next.ErrorMessage = MsgNotFound
		} else {
			next.ErrorMessage = MsgTransportFailure
			d.logger.Error("query failed", map[string]interface{}{
				"query": a.Query,
				"error": err.Error(),
			})
		}
		return Outcome{State: next}, nil
	}

	company := result.Company
	return Outcome{State: State{
		Company:      &company,
		Shareholders: result.Shareholders,
		TabsEnabled:  true,
		VisibleTab:   TabCompany,
	}}, nil
}

func filterRole(_ context.Context, s State, a Action) (Outcome, error) {
	s.ActiveRole = a.Role
	return Outcome{State: s}, nil
}

func selectTab(_ context.Context, s State, a Action) (Outcome, error) {
	if a.Tab != TabCompany && a.Tab != TabShareholders {
		return Outcome{State: s}, errors.NewInvalidActionError("select-tab: " + string(a.Tab))
	}
	if !s.TabsEnabled || s.ErrorFlag {
		return Outcome{State: s}, nil
	}
	s.VisibleTab = a.Tab
	s.ActiveTab = a.Tab
	return Outcome{State: s}, nil
}

func toggleEdit(_ context.Context, s State, _ Action) (Outcome, error) {
	if !s.Loaded() {
		return Outcome{State: s}, nil
	}
	s.Editing = !s.Editing
	return Outcome{State: s}, nil
}

func saveForm(_ context.Context, s State, a Action) (Outcome, error) {
	s.Editing = false
	return Outcome{State: s, Feedback: Feedback{Submitted: CollectForm(a.Fields)}}, nil
}
