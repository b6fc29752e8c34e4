// Package api handles incoming HTTP requests, request validation and
// response formatting for scientists, planets and missions. It translates
// HTTP concerns to service calls and renders results through the view
// functions in views.go.
package api
