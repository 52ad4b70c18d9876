package forms

import "strings"

// TweetForm is the post creation form. Both fields are required; no
// row is written when validation fails.
type TweetForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (f *TweetForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Title) == "" {
		errs.Add("title", requiredMessage)
	}
	if strings.TrimSpace(f.Content) == "" {
		errs.Add("content", requiredMessage)
	}
	return errs
}
