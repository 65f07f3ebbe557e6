package models

import "net/url"

// ContactSubmission is a contact form post bound for the relay endpoint
type ContactSubmission struct {
	ID     string
	Fields url.Values
}

// Email returns the submitted reply address
func (c *ContactSubmission) Email() string {
	return c.Fields.Get("email")
}

// Message returns the submitted message body
func (c *ContactSubmission) Message() string {
	return c.Fields.Get("message")
}

// ContactResult is the outcome reported back to the visitor
type ContactResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
