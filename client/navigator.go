package client

import "github.com/rs/zerolog/log"

// Navigator sends the user to another view. The client calls it with
// LoginPath once for every 401 response.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// logNavigator is the default: headless processes have no view to leave, so
// the redirect is only recorded.
type logNavigator struct{}

func (logNavigator) Navigate(path string) {
	log.Warn().Str("path", path).Msg("navigation requested")
}
