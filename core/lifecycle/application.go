package lifecycle

import "net/http"

// Application describes the application being bootstrapped. The lifecycle
// layer treats it as opaque: the handler it exposes receives every request
// once the instance is bound, and nothing here inspects or routes traffic.
type Application interface {
	Handler() http.Handler
}

// App adapts a plain http.Handler into an Application.
func App(h http.Handler) Application {
	return handlerApp{h: h}
}

type handlerApp struct {
	h http.Handler
}

func (a handlerApp) Handler() http.Handler { return a.h }
