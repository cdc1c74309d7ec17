// Package form drives the applicant's multi-step intake flow as an explicit
// state machine: Welcome -> Personal -> Guardian -> Review -> Submitted.
// Transition legality lives here, decoupled from any rendering concern.
package form

import (
	"fiber/khayalethu/app/validation"
)

type State string

const (
	StateWelcome   State = "welcome"
	StatePersonal  State = "personal"
	StateGuardian  State = "guardian"
	StateReview    State = "review"
	StateSubmitted State = "submitted"
)

// Payload is the finalized submission handed to the endpoint: every
// collected text field plus the attached files keyed by field name.
type Payload struct {
	Values map[string]string
	Files  map[string]string
}

// Submitter is the submission endpoint as seen by the controller. Tests
// substitute a fake; production wraps the HTTP client.
type Submitter interface {
	Submit(p Payload) (id uint, err error)
}

// Controller holds the in-progress application across steps and gates
// forward navigation on validation results.
type Controller struct {
	state     State
	values    map[string]string
	files     map[string]string
	errors    map[string]string
	message   string
	submitter Submitter
	appID     uint
}

func New(s Submitter) *Controller {
	return &Controller{
		state:     StateWelcome,
		values:    make(map[string]string),
		files:     make(map[string]string),
		errors:    make(map[string]string),
		submitter: s,
	}
}

func (c *Controller) State() State { return c.state }

// ApplicationID returns the id assigned by the endpoint, zero until submitted.
func (c *Controller) ApplicationID() uint { return c.appID }

// Message is the most recent submission failure surfaced by the endpoint.
func (c *Controller) Message() string { return c.message }

// Errors returns the currently surfaced per-field failures.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetField records a field edit and clears that field's surfaced error.
func (c *Controller) SetField(name, value string) {
	c.values[name] = value
	delete(c.errors, name)
}

// AttachFile records an uploaded document and clears its surfaced error.
func (c *Controller) AttachFile(name, filename string) {
	c.files[name] = filename
	delete(c.errors, name)
}

// Advance validates the current step and, if it passes, moves forward.
// From Review it performs the actual submission. Returns true when the
// state changed.
func (c *Controller) Advance() bool {
	switch c.state {
	case StateWelcome:
		c.state = StatePersonal
		return true
	case StatePersonal:
		return c.gate(validation.Personal, StateGuardian)
	case StateGuardian:
		return c.gate(validation.Guardian, StateReview)
	case StateReview:
		return c.Submit() == nil && c.state == StateSubmitted
	}
	return false
}

// Retreat moves to the immediately prior state without re-validation and
// clears any surfaced errors. Welcome and Submitted have no prior state.
func (c *Controller) Retreat() bool {
	var prev State
	switch c.state {
	case StatePersonal:
		prev = StateWelcome
	case StateGuardian:
		prev = StatePersonal
	case StateReview:
		prev = StateGuardian
	default:
		return false
	}
	c.state = prev
	c.errors = make(map[string]string)
	c.message = ""
	return true
}

// Submit re-validates every required field, packages the payload and calls
// the endpoint. Only callable from Review; on any failure the controller
// stays there with the errors surfaced.
func (c *Controller) Submit() error {
	if c.state != StateReview {
		return ErrNotReviewing
	}
	if failed := validation.All.Validate(c.values, c.attached()); len(failed) > 0 {
		c.errors = failed
		return ErrInvalidFields
	}
	id, err := c.submitter.Submit(c.payload())
	if err != nil {
		c.message = err.Error()
		return err
	}
	c.appID = id
	c.message = ""
	c.state = StateSubmitted
	return nil
}

func (c *Controller) gate(step validation.Step, next State) bool {
	if failed := step.Validate(c.values, c.attached()); len(failed) > 0 {
		c.errors = failed
		return false
	}
	c.errors = make(map[string]string)
	c.state = next
	return true
}

func (c *Controller) attached() map[string]bool {
	present := make(map[string]bool, len(c.files))
	for name := range c.files {
		present[name] = true
	}
	return present
}

func (c *Controller) payload() Payload {
	p := Payload{
		Values: make(map[string]string, len(c.values)),
		Files:  make(map[string]string, len(c.files)),
	}
	for k, v := range c.values {
		p.Values[k] = v
	}
	for k, v := range c.files {
		p.Files[k] = v
	}
	return p
}
