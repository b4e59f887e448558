// Package http implements the REST API of the job board.
//
// Requests pass through trace id, access logging, recovery and timeout
// middlewares. Protected routes then authenticate the actor (student and
// agency session cookies, secretary query credentials), validate and sanitize
// the input against the route schema and finally call the service layer.
// Every error is answered with {"err": "<message>"}.
package http
