package models

// Mail is an outgoing HTML email.
type Mail struct {
	From    string
	To      string
	Subject string
	HTML    string
}
