package model

import "net/url"

// Submission is the data posted by the home page form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FromValues reads the form fields of a submission. Missing keys yield empty
// strings and unknown keys are ignored.
func FromValues(v url.Values) Submission {
	return Submission{
		Name:    v.Get("name"),
		Email:   v.Get("email"),
		Message: v.Get("message"),
	}
}
