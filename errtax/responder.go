package errtax

// Override decides the Response for a CoreError, taking precedence over
// DefaultResponses when it returns handled=true.
type Override func(err *CoreError) (resp Response, handled bool)

// AutoResponder is the built-in handler described in spec.md §4.6: on
// catching a CoreError it looks up the category's default response,
// unless a per-pipeline Override decides otherwise.
type AutoResponder struct {
	Override Override
}

// NewAutoResponder returns a responder using only DefaultResponses.
func NewAutoResponder() *AutoResponder {
	return &AutoResponder{}
}

// Respond resolves the Response for err: the Override's decision if it
// handles the error, otherwise the category's default.
func (a *AutoResponder) Respond(err *CoreError) Response {
	if a != nil && a.Override != nil {
		if resp, handled := a.Override(err); handled {
			return resp
		}
	}
	return err.DefaultResponse()
}
