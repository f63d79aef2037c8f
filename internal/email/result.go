package email

// Outcome is the tagged result of an extraction attempt. A blocked fetch is a
// distinct outcome, not an error and not an empty address.
type Outcome int

const (
	// NotFound means every strategy ran without producing a valid address.
	NotFound Outcome = iota
	// Found carries a validated address.
	Found
	// Blocked means the detail page fetch hit bot protection and no
	// substitute source was available.
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Blocked:
		return "blocked"
	default:
		return "not_found"
	}
}

// Result pairs the outcome with the address (set only for Found).
type Result struct {
	Outcome Outcome
	Email   string
}

func found(addr string) Result { return Result{Outcome: Found, Email: addr} }
func notFound() Result         { return Result{Outcome: NotFound} }
func blocked() Result          { return Result{Outcome: Blocked} }
