// Package browser owns the automation session the pipeline drives. The
// pipeline and the email extractor only ever see the Page and Session
// interfaces; the playwright implementation lives behind them so tests can
// replay fixture markup instead of hitting a live browser.
package browser

import "time"

// Element is one matched DOM node handle.
type Element interface {
	Attribute(name string) (string, error)
}

// Page is the rendering capability the pipeline drives: navigate, read the
// rendered markup, query elements, run a script. Nothing above this package
// touches the automation engine directly.
type Page interface {
	Navigate(url string, timeout time.Duration) error
	Content() (string, error)
	Title() (string, error)
	Find(selector string) ([]Element, error)
	WaitFor(selector string, timeout time.Duration) error
	Evaluate(js string) error
}

// Session owns exactly one automation session at a time. Callers must treat
// it as a scoped resource: Close on every exit path, Restart whenever the
// fingerprint needs discarding.
type Session interface {
	Page() Page
	Restart() error
	Close() error
}
