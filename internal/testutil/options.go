package testutil

import "github.com/zjrosen/poststates/internal/post"

// postData holds all data for a post to be inserted.
type postData struct {
	name    string
	title   string
	status  string
	content string
}

// defaultPost returns a postData with sensible defaults.
func defaultPost(name string) postData {
	return postData{
		name:   name,
		title:  name, // Default title is the name
		status: post.StatusPublished,
	}
}

// PostOption configures a post during builder setup.
type PostOption func(*postData)

// Title sets the post title.
func Title(title string) PostOption {
	return func(p *postData) { p.title = title }
}

// Status sets the post status.
func Status(status string) PostOption {
	return func(p *postData) { p.status = status }
}

// Draft marks the post as a draft.
func Draft() PostOption {
	return func(p *postData) { p.status = post.StatusDraft }
}

// Content sets the post's markdown body.
func Content(content string) PostOption {
	return func(p *postData) { p.content = content }
}
